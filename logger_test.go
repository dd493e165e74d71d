package sdl3

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}

	t.Run("disabled at every level", func(t *testing.T) {
		for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
			if h.Enabled(context.Background(), level) {
				t.Errorf("Enabled(%v) = true, want false", level)
			}
		}
	})

	t.Run("handle succeeds", func(t *testing.T) {
		if err := h.Handle(context.Background(), slog.Record{}); err != nil {
			t.Errorf("Handle() = %v, want nil", err)
		}
	})

	t.Run("derived handlers stay nop", func(t *testing.T) {
		if _, ok := h.WithAttrs([]slog.Attr{slog.String("subsystem", "video")}).(nopHandler); !ok {
			t.Error("WithAttrs() did not return a nopHandler")
		}
		if _, ok := h.WithGroup("gpu").(nopHandler); !ok {
			t.Error("WithGroup() did not return a nopHandler")
		}
	})
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("package logger logs before SetLogger is called")
	}
}

func TestSetLoggerRoundTrip(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}

	Logger().Debug("swapchain acquired", "w", 800, "h", 600)
	if !strings.Contains(buf.String(), "swapchain acquired") {
		t.Errorf("log output missing record, got %q", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	// Nil restores the silent default rather than storing a nil logger.
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left an enabled logger installed")
	}
}

func TestLoggerConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for range workers {
		go func() {
			defer wg.Done()
			if l := Logger(); l == nil {
				t.Error("Logger() returned nil mid-swap")
			} else {
				l.Debug("poll")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Logger()
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	// The common case: a wrapped call logging into the silent default.
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("claim window", "display", 1)
	}
}
