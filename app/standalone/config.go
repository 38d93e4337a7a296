package standalone

import (
	"errors"
	"fmt"

	"github.com/lambda-feedback/parrot/internal/server"
)

var ErrInvalidConfig = errors.New("invalid server config")

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

// Validate rejects configs the http server cannot listen with.
func (c Config) Validate() error {
	if c.HttpConfig.Port < 0 || c.HttpConfig.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.HttpConfig.Port)
	}

	if c.HttpConfig.ReadHeaderTimeout < 0 {
		return fmt.Errorf("%w: negative read header timeout", ErrInvalidConfig)
	}

	return nil
}
