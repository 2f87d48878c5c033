package cache

import (
	"github.com/matzehuels/mandelzoom/pkg/colormap"
	"github.com/matzehuels/mandelzoom/pkg/escape"
)

// ArtifactKeyOpts holds the encoding options that distinguish artifacts
// rendered from the same frame.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	Supersample int    `json:"supersample"`
	Quality     int    `json:"quality,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// FrameKey identifies a frame by its render inputs.
	FrameKey(p escape.Params, h colormap.Helix) string

	// ArtifactKey identifies an encoded artifact of the frame with frameKey.
	ArtifactKey(frameKey string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FrameKey returns "frame:<sha256>" over the params and palette.
func (DefaultKeyer) FrameKey(p escape.Params, h colormap.Helix) string {
	return hashKey("frame", p, h)
}

// ArtifactKey returns "artifact:<sha256>" over the frame key and options.
func (DefaultKeyer) ArtifactKey(frameKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameKey, opts)
}

var _ Keyer = DefaultKeyer{}
