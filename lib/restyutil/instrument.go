package restyutil

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

const RequestIdHeader = "X-Request-ID"

type InstrumentOutput interface {
	Write(id string, contents string)
}

type instrumentCtx struct {
	output    InstrumentOutput
	tracer    trace.Tracer
	requests  metric.Int64Counter
	failures  metric.Int64Counter
	idcounter *uint64
}

type messageIdKey struct{}

// InstrumentClient traces every request made by `client`, counts requests
// and failures, and tags each request with an X-Request-ID.
//
// `name` is used as the tracer and meter name.
// `output` can be nil, if it isn't then the full request/response of every
// exchange is written to it while debug logging is enabled.
func InstrumentClient(client *resty.Client, name string, output InstrumentOutput) {
	meter := otel.Meter(name)
	requests, _ := meter.Int64Counter(
		"http.client.requests",
		metric.WithDescription("number of requests sent to the api"),
	)
	failures, _ := meter.Int64Counter(
		"http.client.failures",
		metric.WithDescription("number of requests that failed in transport or returned a non-2xx status"),
	)

	var idcounter uint64
	i := instrumentCtx{
		output:    output,
		tracer:    otel.Tracer(name),
		requests:  requests,
		failures:  failures,
		idcounter: &idcounter,
	}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentCtx) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	ctx, _ := i.tracer.Start(req.Context(), req.Method)

	if req.Header.Get(RequestIdHeader) == "" {
		req.SetHeader(RequestIdHeader, uuid.NewString())
	}

	messageId := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)
	ctx = context.WithValue(ctx, messageIdKey{}, messageId)
	slog.DebugContext(
		ctx, "start request",
		"method", req.Method,
		"url", req.URL,
		"message_id", messageId,
		"request_id", req.Header.Get(RequestIdHeader),
	)

	req.SetContext(ctx)
	return nil
}

func messageIdFrom(ctx context.Context) string {
	id, _ := ctx.Value(messageIdKey{}).(string)
	return id
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)

	// setting request attributes here since res.Request.RawRequest is nil in onBeforeRequest
	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)

	attrs := metric.WithAttributes(
		attribute.String("method", res.Request.Method),
		attribute.Int("status", res.StatusCode()),
	)
	i.requests.Add(ctx, 1, attrs)
	if res.IsError() {
		i.failures.Add(ctx, 1, attrs)
		span.SetStatus(codes.Error, res.Status())
	}

	messageId := messageIdFrom(ctx)
	if i.output != nil && slog.Default().Enabled(ctx, slog.LevelDebug) {
		i.output.Write(messageId, formatHttpMessage(res))
	}
	slog.DebugContext(
		ctx, "request finished",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"message_id", messageId,
	)

	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	ctx := req.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	// non-2xx responses also land here when an error result is set,
	// those were already recorded in onAfterResponse.
	if _, isResponseErr := err.(*resty.ResponseError); isResponseErr {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
	span.SetName(fmt.Sprintf("http %s", req.Method))

	attrs := metric.WithAttributes(attribute.String("method", req.Method))
	i.requests.Add(ctx, 1, attrs)
	i.failures.Add(ctx, 1, attrs)

	slog.DebugContext(
		ctx, "request failed",
		"method", req.Method,
		"url", req.URL,
		"err", err,
		"message_id", messageIdFrom(ctx),
	)

	if req.RawRequest == nil {
		return
	}
	span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
}
