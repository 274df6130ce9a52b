package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	assert.False(t, Enabled())
	t.Setenv(EndpointEnv, "http://localhost:4318")
	assert.True(t, Enabled())
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.False(t, span.IsRecording())
}

func TestTracerWithoutSetup(t *testing.T) {
	assert.NotNil(t, Tracer("astar"))
	assert.NotEmpty(t, hostname())
}
