package log_test

import (
	"context"
	"testing"

	"taskboard-api/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "unknown", Mode: "production", Encoding: "json"})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")

	nop := log.NewNop()
	nop.Error(context.Background(), "discarded")
}
