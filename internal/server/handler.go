package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is an http.Handler mounted on the server mux. Pattern
// follows http.ServeMux syntax, "/" catches every request.
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

// HttpHandlerResult contributes a handler to the "handlers" group
// consumed by the http server and the lambda host.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

// AsHttpHandler mounts handler at pattern. An empty pattern mounts
// it at the root.
func AsHttpHandler(pattern string, handler http.Handler) HttpHandlerResult {
	if pattern == "" {
		pattern = "/"
	}

	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}
