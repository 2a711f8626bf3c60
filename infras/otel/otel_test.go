package otel_test

import (
	"context"
	"errors"
	"testing"

	"infopage/config"
	"infopage/infras/otel"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := config.Default()

	tracer := otel.New(cfg)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")
	scope.SetAttributes(map[string]any{
		"flag":  true,
		"name":  "slide",
		"index": 2,
		"id":    int64(7),
		"list":  []string{"a"},
		"other": 1.5,
	})
	scope.AddEvent("rendered")
	scope.SetName("GET /slide")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
}
