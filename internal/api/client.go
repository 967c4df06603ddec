// Package api is the REST client of the analytics backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homehealth-dashboard/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("internal/api")

// NewHTTPClient creates the resty client shared by AuthClient and Client.
// `output` may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, output restyutil.InstrumentOutput) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("accept", "application/json")
	client.SetHeader("user-agent", "hhdash")
	restyutil.InstrumentClient(client, "internal/api/http", output)
	return client
}

// Credentials supplies the bearer token of authenticated requests and is
// told when the backend rejects it.
type Credentials interface {
	Token() string
	Expire(ctx context.Context)
}

// Client makes authenticated requests. every 401 expires the credentials
// and is reported as ErrSessionExpired.
type Client struct {
	http  *resty.Client
	creds Credentials
}

func NewClient(http *resty.Client, creds Credentials) *Client {
	return &Client{http: http, creds: creds}
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// do sends an authenticated request and returns the raw response of a
// 2xx answer.
func (c *Client) do(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	token := c.creds.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token)
	if body != nil {
		req.SetHeader("content-type", "application/json").SetBody(body)
	}
	res, err := req.Execute(method, path)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}

	if res.StatusCode() == http.StatusUnauthorized {
		c.creds.Expire(ctx)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}
	if res.IsError() || res.StatusCode() >= 300 {
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Status: res.StatusCode(),
			Detail: decodeDetail(res.Body()),
		}
	}
	return res, nil
}

// fetch is do + json decoding of the body into `out`.
func (c *Client) fetch(ctx context.Context, method, path string, body, out any) error {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	)

	res, err := c.do(ctx, method, path, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return err
	}

	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.fetch(ctx, http.MethodGet, path, nil, out)
}
