package handler

import (
	"net/http"

	"github.com/lambda-feedback/parrot/internal/server"
	"github.com/lambda-feedback/parrot/runtime"
)

// NewRoutes returns the route table of the service.
func NewRoutes() runtime.Routes {
	return runtime.Routes{
		{
			Method: http.MethodGet,
			Path:   "/health",
			Handle: Health,
		},
		{
			Method:    http.MethodPost,
			Path:      "/echo",
			ParseBody: true,
			Handle:    Echo,
		},
	}
}

// NewRootRoute mounts the handler for every path. Routing itself is
// done by the runtime router.
func NewRootRoute(handler *HttpHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
