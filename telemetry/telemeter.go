package telemetry

import (
	"context"

	"github.com/anoideaopen/accessor/member"
	"github.com/anoideaopen/accessor/registry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "accessor"

// Telemeter wraps member invocations in trace spans. Lookup and invocation
// semantics are untouched; every error is recorded on the span and returned
// as is.
type Telemeter struct {
	tracer trace.Tracer
}

// NewTelemeter creates a Telemeter over the globally installed trace
// provider (see InstallTraceProvider).
func NewTelemeter() *Telemeter {
	return &Telemeter{tracer: otel.Tracer(tracerName)}
}

// Invoke is member.Invoke wrapped in a span.
func (tm *Telemeter) Invoke(ctx context.Context, t *registry.Type, recv any, method string, args ...any) ([]any, error) {
	_, span := tm.startSpan(ctx, "accessor.Invoke", t, method)
	defer span.End()

	output, err := member.Invoke(t, recv, method, args...)
	recordResult(span, err)

	return output, err
}

// InvokeInferred is member.InvokeInferred wrapped in a span.
func (tm *Telemeter) InvokeInferred(ctx context.Context, t *registry.Type, recv any, method string, args ...any) ([]any, error) {
	_, span := tm.startSpan(ctx, "accessor.InvokeInferred", t, method)
	defer span.End()

	output, err := member.InvokeInferred(t, recv, method, args...)
	recordResult(span, err)

	return output, err
}

// Call is member.Call wrapped in a span.
func (tm *Telemeter) Call(ctx context.Context, t *registry.Type, recv any, method string, args ...string) ([]any, error) {
	_, span := tm.startSpan(ctx, "accessor.Call", t, method)
	defer span.End()

	output, err := member.Call(t, recv, method, args...)
	recordResult(span, err)

	return output, err
}

func (tm *Telemeter) startSpan(ctx context.Context, name string, t *registry.Type, method string) (context.Context, trace.Span) {
	return tm.tracer.Start(ctx, name, trace.WithAttributes(
		TypeName(t.Name()),
		MemberName(method),
		MemberKind(KindMethod),
	))
}

func recordResult(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
