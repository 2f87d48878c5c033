package export

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/mandelzoom/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultJPEGQuality is used when Options.Quality is zero.
const DefaultJPEGQuality = 92

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Ext returns the file extension of f including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

func (f Format) imaging() imaging.Format {
	if f == FormatJPEG {
		return imaging.JPEG
	}
	return imaging.PNG
}

// ParseFormat accepts "png", "jpeg" and "jpg" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want png or jpeg)", s)
}

// FormatFromPath infers the format from a file extension, falling back to
// PNG when the extension is missing.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPNG, nil
	}
	return ParseFormat(ext[1:])
}
