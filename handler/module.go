package handler

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("handler",
		// provide route table
		fx.Provide(NewRoutes),
		// provide http adapter
		fx.Provide(NewHttpHandler),
		// mount http adapter
		fx.Provide(NewRootRoute),
	)
}
