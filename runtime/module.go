package runtime

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/parrot/runtime/body"
)

// Module provides the request pipeline. The route table is expected
// to be provided by the caller.
func Module(config body.Config) fx.Option {
	return fx.Module(
		"runtime",

		// provide body parser config
		fx.Supply(config),

		// provide body parser
		fx.Provide(body.NewParser),

		// provide runtime handler
		fx.Provide(NewRouterHandler),
	)
}
