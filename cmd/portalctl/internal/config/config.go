package config

import (
	"context"

	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/client"
)

type contextKey string

const configKey contextKey = "portalctl-config"

// GlobalConfig holds shared configuration for all portalctl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	APIBaseURL     string // explicit override; empty means server URL + /api
	NonInteractive bool
	Provider       *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions, which always run under the root command's injection.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("portalctl: config not found in context - this is a bug in portalctl")
	}
	return cfg
}
