package observability

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "openaria_tracking"

// SetPropagator configures global W3C tracecontext + baggage propagation.
func SetPropagator() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// WrapHTTPClient returns a copy of client whose transport opens a client span
// per outbound call. A nil provider resolves to the global one.
func WrapHTTPClient(client *http.Client, provider trace.TracerProvider) *http.Client {
	if client == nil {
		client = http.DefaultClient
	}
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	clone := *client
	next := clone.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	clone.Transport = &spanTransport{next: next, tracer: provider.Tracer(instrumentationName + "/outbound")}
	return &clone
}

type spanTransport struct {
	next   http.RoundTripper
	tracer trace.Tracer
}

func (t *spanTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	method := strings.ToUpper(req.Method)
	// Span names use host and path only; query strings may carry credentials.
	ctx, span := t.tracer.Start(req.Context(), method+" "+req.URL.Host+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("server.address", req.URL.Hostname()),
			attribute.String("url.path", req.URL.Path),
		),
	)
	defer span.End()

	out := req.Clone(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out.Header))

	start := time.Now()
	resp, err := t.next.RoundTrip(out)
	span.SetAttributes(attribute.Int64("http.client.duration_ms", time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return resp, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		span.SetAttributes(attribute.Bool("delivery.rejected", true))
	}
	return resp, nil
}
