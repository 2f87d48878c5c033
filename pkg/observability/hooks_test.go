package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Frame hooks
	f := NoopFrameHooks{}
	f.OnFrameHit(ctx, 800, 738, 30)
	f.OnRenderStart(ctx, 800, 738, 30)
	f.OnRenderComplete(ctx, 800, 738, 30, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/render.png")
	h.OnResponse(ctx, "GET", "/api/render.png", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Frames().(NoopFrameHooks); !ok {
		t.Error("Frames() should return NoopFrameHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customFrames := &testFrameHooks{}
	SetFrameHooks(customFrames)
	if Frames() != customFrames {
		t.Error("SetFrameHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Frames().(NoopFrameHooks); !ok {
		t.Error("Reset() should restore NoopFrameHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testFrameHooks{}
	SetFrameHooks(custom)

	// Setting nil should be ignored
	SetFrameHooks(nil)

	if Frames() != custom {
		t.Error("SetFrameHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testFrameHooks struct{ NoopFrameHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
