package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/parrot/runtime"
	"github.com/lambda-feedback/parrot/runtime/body"
)

type HttpHandlerParams struct {
	fx.In

	Handler runtime.Handler
	Config  body.Config
	Log     *zap.Logger
}

func NewHttpHandler(params HttpHandlerParams) *HttpHandler {
	return &HttpHandler{
		handler: params.Handler,
		limit:   params.Config.Limit,
		log:     params.Log,
	}
}

// HttpHandler adapts a runtime.Handler to net/http. The response is
// written exactly once.
type HttpHandler struct {
	handler runtime.Handler
	limit   int64
	log     *zap.Logger
}

func (h *HttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// Read at most one byte past the limit, which is enough for the
	// parser to reject oversized bodies
	var src io.Reader = r.Body
	if h.limit > 0 {
		src = io.LimitReader(r.Body, h.limit+1)
	}

	body, err := io.ReadAll(src)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	request := runtime.Request{
		Path:   r.URL.Path,
		Method: r.Method,
		Header: r.Header,
		Body:   body,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
