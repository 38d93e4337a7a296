package config

import (
	"github.com/lambda-feedback/parrot/runtime/body"
	"github.com/lambda-feedback/parrot/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Body is the request body parser configuration
	Body body.Config `conf:"body"`
}

// CliMap maps global cli flags to their config keys.
var CliMap = map[string]string{
	"body-limit":  "body.limit",
	"body-strict": "body.strict",
}

// DefaultConfig returns the flat default config values.
func DefaultConfig() conf.Defaults {
	bodyDefaults := body.DefaultConfig()

	defaults := conf.MergeDefaults("body", conf.Defaults{
		"limit":  bodyDefaults.Limit,
		"strict": bodyDefaults.Strict,
	})

	defaults["log_level"] = "info"
	defaults["log_format"] = "production"

	return defaults
}
