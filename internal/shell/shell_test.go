package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/parrot/internal/shell"
)

func shutdownOnStart(exitCode int) fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				_ = sd.Shutdown(fx.ExitCode(exitCode))
				return nil
			},
		})
	})
}

func TestShell_Run_ExitCode(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart(3))

	assert.Equal(t, 3, shell.ExitCode(err))
}

func TestShell_Run_CleanExit(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart(0))

	assert.NoError(t, err)
}

func TestShell_Run_StartFailure(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return errors.New("listen failed")
			},
		})
	}))

	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_Run_ProvidesContext(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	var got context.Context
	err := s.Run(context.Background(),
		fx.Invoke(func(ctx context.Context) { got = ctx }),
		shutdownOnStart(0),
	)

	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, shell.ExitCode(nil))
	assert.Equal(t, 1, shell.ExitCode(errors.New("plain")))
	assert.Equal(t, 4, shell.ExitCode(fmt.Errorf("wrapped: %w", shell.NewExitError(4))))
}
