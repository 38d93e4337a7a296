package standalone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/parrot/internal/server"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		http  server.HttpConfig
		valid bool
	}{
		{"default port", server.HttpConfig{Port: server.DefaultPort}, true},
		{"ephemeral port", server.HttpConfig{Port: 0}, true},
		{"negative port", server.HttpConfig{Port: -1}, false},
		{"port too large", server.HttpConfig{Port: 70000}, false},
		{"negative timeout", server.HttpConfig{Port: 80, ReadHeaderTimeout: -time.Second}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{HttpConfig: tt.http}.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
