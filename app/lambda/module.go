package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/parrot/handler"
	"github.com/lambda-feedback/parrot/util/logging"
)

// Module serves the handlers from AWS Lambda proxy events. An invalid
// proxy source fails the app before any hook runs.
func Module(config Config) fx.Option {
	source, err := ParseProxySource(config.ProxySource.String())
	if err != nil {
		return fx.Error(err)
	}

	config.ProxySource = source

	return fx.Module(
		"lambda",
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		handler.Module(),
		fx.Provide(NewLifecycleHandler),
		// force construction so the lifecycle hooks are registered
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
