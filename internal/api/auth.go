package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"homehealth-dashboard/internal/models"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// AuthClient talks to the endpoints that hand out and check tokens, it
// never expires a session on its own.
type AuthClient struct {
	http *resty.Client
}

func NewAuthClient(http *resty.Client) AuthClient {
	return AuthClient{http: http}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c AuthClient) send(ctx context.Context, req *resty.Request, method, path string, out any) error {
	res, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	if res.IsError() || res.StatusCode() >= 300 {
		return &StatusError{
			Method: method,
			Path:   path,
			Status: res.StatusCode(),
			Detail: decodeDetail(res.Body()),
		}
	}
	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// Login exchanges a username and password for a bearer token. wrong
// credentials come back as a *StatusError matching ErrUnauthorized.
func (c AuthClient) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	var out models.TokenResponse
	req := c.http.R().
		SetHeader("content-type", "application/json").
		SetBody(loginRequest{Username: username, Password: password})
	err := c.send(ctx, req, http.MethodPost, "/auth/login", &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		return models.TokenResponse{}, err
	}
	if out.AccessToken == "" {
		err = fmt.Errorf("POST /auth/login: response carried no access token")
		span.SetStatus(codes.Error, err.Error())
		return models.TokenResponse{}, err
	}
	return out, nil
}

// Verify checks `token` and returns the username it belongs to.
func (c AuthClient) Verify(ctx context.Context, token string) (string, error) {
	ctx, span := tracer.Start(ctx, "Verify")
	defer span.End()

	var out models.VerifyResponse
	err := c.send(ctx, c.http.R().SetAuthToken(token), http.MethodGet, "/auth/verify", &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verify failed")
		return "", err
	}
	return out.Username, nil
}

// Me returns the username of `token` through /auth/me.
func (c AuthClient) Me(ctx context.Context, token string) (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	err := c.send(ctx, c.http.R().SetAuthToken(token), http.MethodGet, "/auth/me", &out)
	if err != nil {
		return "", err
	}
	return out.Username, nil
}

// Info returns the unauthenticated api root.
func (c AuthClient) Info(ctx context.Context) (models.APIInfo, error) {
	var out models.APIInfo
	err := c.send(ctx, c.http.R(), http.MethodGet, "/", &out)
	return out, err
}
