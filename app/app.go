package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/parrot/config"
	"github.com/lambda-feedback/parrot/internal/shell"
	"github.com/lambda-feedback/parrot/runtime"
	"github.com/lambda-feedback/parrot/util/conf"
	"github.com/lambda-feedback/parrot/util/logging"
)

// New creates a shell providing the modules shared by every host:
// the global config and the request pipeline.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide request pipeline
		runtime.Module(config.Body),
	)

	return shell.New(log, sharedModule), nil
}
