package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/rocketapi-io/rocketapi-go/client")

// Calls a [Transport] and classifies each response [Envelope] in to a payload or an [*APIError].
//
// One Dispatcher serves one platform namespace (eg "instagram/"), and owns the diagnostic [Session] state for the client built on top of it. It is safe for concurrent use.
type Dispatcher struct {
	Transport Transport

	// Prefix prepended to every method path, including any trailing slash. May be empty.
	Namespace string

	// Optional. If set, a DEBUG record is written for every dispatch. Failures are never logged at higher levels; they are returned to the caller.
	Logger *slog.Logger

	session Session
}

func NewDispatcher(t Transport, namespace string) *Dispatcher {
	return &Dispatcher{
		Transport: t,
		Namespace: namespace,
	}
}

// Sends payload to the namespaced method path, and classifies the response.
//
// On success returns the inner response body (JSON null if the body was absent). Otherwise returns an [*APIError]; see [ErrTransport], [ErrNotFound] and [ErrBadResponse]. Session state is updated only if the transport returned a document.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	path := d.Namespace + method
	ctx, span := tracer.Start(ctx, "Dispatch", trace.WithAttributes(
		attribute.String("rocketapi.method", path),
	))
	defer span.End()
	start := time.Now()

	var counter uint64
	var body json.RawMessage
	var err error

	raw, sendErr := d.Transport.Send(ctx, path, payload)
	if sendErr != nil {
		err = &APIError{Kind: KindTransport, Method: path, Err: sendErr}
	} else {
		counter = d.session.record(raw)
		body, err = Classify(path, ParseEnvelope(raw))
	}

	outcome := outcomeLabel(err)
	dispatchCount.WithLabelValues(d.Namespace, outcome).Inc()
	dispatchDuration.WithLabelValues(d.Namespace, outcome).Observe(time.Since(start).Seconds())

	span.SetAttributes(attribute.String("rocketapi.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	if d.Logger != nil {
		d.Logger.DebugContext(ctx, "rocketapi dispatch", "method", path, "outcome", outcome, "counter", counter, "duration", time.Since(start))
	}
	return body, err
}

// Classifies a parsed envelope for the given method path. Returns the payload for a successful envelope, and an [*APIError] (never of [KindTransport]) otherwise.
func Classify(method string, env *Envelope) (json.RawMessage, error) {
	if env.Status != StatusDone {
		return nil, &APIError{Kind: KindBadResponse, Method: method, Envelope: env}
	}
	if env.IsSuccess() {
		if env.Response.Body == nil {
			return json.RawMessage("null"), nil
		}
		return env.Response.Body, nil
	}
	if env.IsNotFound() {
		return nil, &APIError{Kind: KindNotFound, Method: method, Envelope: env}
	}
	return nil, &APIError{Kind: KindBadResponse, Method: method, Envelope: env}
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	if ae, ok := err.(*APIError); ok {
		switch ae.Kind {
		case KindTransport:
			return "transport_error"
		case KindNotFound:
			return "not_found"
		case KindBadResponse:
			return "bad_response"
		}
	}
	return "error"
}

// Decodes a successful dispatch payload in to out. Convenience for callers who know the response shape.
func (d *Dispatcher) DispatchInto(ctx context.Context, method string, payload, out any) error {
	body, err := d.Dispatch(ctx, method, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed decoding response payload: %w", err)
	}
	return nil
}

// Copy of the most recent raw response document (nil before the first call reached the service). For debugging only.
func (d *Dispatcher) LastResponse() json.RawMessage {
	return d.session.LastResponse()
}

// Number of calls which received a document from the service, regardless of how it was classified.
func (d *Dispatcher) Counter() uint64 {
	return d.session.Counter()
}
