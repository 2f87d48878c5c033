package cache

import (
	"github.com/matzehuels/mandelzoom/pkg/colormap"
	"github.com/matzehuels/mandelzoom/pkg/escape"
)

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by build
// version so that artifacts from an older renderer are never served:
//
//	keys := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// FrameKey generates a prefixed frame key.
func (k *ScopedKeyer) FrameKey(p escape.Params, h colormap.Helix) string {
	return k.prefix + k.inner.FrameKey(p, h)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(frameKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(frameKey, opts)
}
