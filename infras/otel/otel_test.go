package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpointUsesNoop(t *testing.T) {
	cfg := &config.Config{}

	tracer, cleanup := otel.New(cfg)
	defer cleanup()

	ctx, scope := tracer.NewScope(context.Background(), "repository", "repository.room.Insert")
	defer scope.End()

	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		scope.SetAttribute("query", "SELECT 1")
		scope.SetAttributes(map[string]any{"rows": 3, "cached": true, "cols": []string{"a"}, "price": 1.5})
		scope.AddEvent("executed")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
	})
}
