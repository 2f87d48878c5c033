package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mandelzoom/pkg/observability"
)

// logHooks reports frame, cache and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetFrameHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnFrameHit(_ context.Context, width, height, depth int) {
	h.logger.Debug("frame reused", "width", width, "height", height, "depth", depth)
}

func (h logHooks) OnRenderStart(_ context.Context, width, height, depth int) {
	h.logger.Debug("frame render", "width", width, "height", height, "depth", depth)
}

func (h logHooks) OnRenderComplete(_ context.Context, width, height, depth int, elapsed time.Duration) {
	h.logger.Debug("frame rendered", "width", width, "height", height, "depth", depth, "elapsed", elapsed.Round(time.Microsecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// OnRequest is silent; the server logs completed requests itself.
func (h logHooks) OnRequest(context.Context, string, string) {}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, elapsed time.Duration) {
	if status >= 500 {
		h.logger.Warn("server error", "method", method, "path", path, "status", status)
	}
}

var (
	_ observability.FrameHooks = logHooks{}
	_ observability.CacheHooks = logHooks{}
	_ observability.HTTPHooks  = logHooks{}
)
