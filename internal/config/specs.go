package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	// PlatformSecretKey is the shared secret the embedding platform signs
	// instance tokens with.
	PlatformSecretKey string `envconfig:"platform_secret_key" required:"true"`

	GraphAPIURL    string        `envconfig:"graph_api_url" default:"https://graph.facebook.com/v2.3"`
	GraphAppID     string        `envconfig:"graph_app_id" required:"true"`
	GraphAppSecret string        `envconfig:"graph_app_secret" required:"true"`
	GraphTimeout   time.Duration `envconfig:"graph_timeout" default:"10s"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
