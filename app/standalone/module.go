package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/parrot/handler"
	"github.com/lambda-feedback/parrot/internal/server"
	"github.com/lambda-feedback/parrot/util/logging"
)

// Module serves the handlers on a standalone http server.
func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
