package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p != nil {
		t.Fatalf("expected tracing disabled without an endpoint")
	}
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider
	ctx, end := p.Span(context.Background(), "handle.open")
	if ctx == nil {
		t.Fatalf("nil provider must pass the context through")
	}
	end()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("nil provider shutdown: %v", err)
	}
}
