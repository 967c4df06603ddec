package globals

import (
	"context"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/auth"
	"homehealth-dashboard/internal/config"
)

type key struct{}

type Value struct {
	Config  config.Config
	BaseURL string
	Auth    api.AuthClient
	Client  *api.Client
	Session *auth.Session
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
