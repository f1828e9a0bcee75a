package restyutil

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Output receives the full text of every exchange made by an instrumented
// client, keyed by a per-client sequence number.
type Output interface {
	Write(id string, contents string)
}

type exchangeIdKey struct{}

type instrumentation struct {
	tracer  trace.Tracer
	output  Output
	counter *atomic.Uint64
}

// InstrumentClient wraps every request made by client in a span.
// `tracer` can be nil, it will default to a library name of "resty".
// `output` can also be nil, then exchanges are not dumped.
func InstrumentClient(client *resty.Client, tracer trace.Tracer, output Output) {
	if tracer == nil {
		tracer = otel.Tracer("resty")
	}
	i := instrumentation{
		tracer:  tracer,
		output:  output,
		counter: &atomic.Uint64{},
	}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentation) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	ctx, _ := i.tracer.Start(
		req.Context(),
		fmt.Sprintf("http %s", req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.URLFull(req.URL),
		),
	)
	if i.output != nil {
		id := strconv.FormatUint(i.counter.Add(1), 10)
		ctx = context.WithValue(ctx, exchangeIdKey{}, id)
	}
	req.SetContext(ctx)
	return nil
}

func (i instrumentation) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(semconv.HTTPResponseStatusCode(res.StatusCode()))
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
	}

	id, ok := ctx.Value(exchangeIdKey{}).(string)
	if ok && i.output != nil {
		i.output.Write(id, formatHttpMessage(res))
	}
	return nil
}

func (i instrumentation) onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
}
