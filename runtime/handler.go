package runtime

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/parrot/runtime/body"
)

var ErrInternal = errors.New("internal server error")

var wellKnownErrors = map[error]int{
	ErrInternal:                 http.StatusInternalServerError,
	body.ErrMalformedBody:       http.StatusBadRequest,
	body.ErrBodyTooLarge:        http.StatusRequestEntityTooLarge,
	body.ErrUnsupportedEncoding: http.StatusUnsupportedMediaType,
	body.ErrUnsupportedCharset:  http.StatusUnsupportedMediaType,
}

// HandlerParams defines the dependencies for the runtime handler.
type HandlerParams struct {
	fx.In

	Routes Routes

	Parser *body.Parser

	Log *zap.Logger
}

// Handler is the interface for handling runtime requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// RouterHandler routes requests through the route table, parses
// bodies for routes that expect one and renders the route's reply.
type RouterHandler struct {
	router *Router

	parser *body.Parser

	log *zap.Logger
}

var _ Handler = (*RouterHandler)(nil)

// NewRouterHandler creates a new router handler.
func NewRouterHandler(params HandlerParams) Handler {
	return &RouterHandler{
		router: NewRouter(params.Routes),
		parser: params.Parser,
		log:    params.Log,
	}
}

// Handle handles a runtime request. It always returns a response, a
// panicking route results in a 500 response.
func (h *RouterHandler) Handle(ctx context.Context, req Request) (res Response) {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res = h.recoverPanic(ctx, log, r)
		}

		log.Debug("handled request",
			zap.Int("status", res.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	route, ok := h.router.Match(req.Method, req.Path)
	if !ok {
		log.Debug("no matching route")
	}

	call := Call{
		Request: req,
		Body:    body.EmptyObject(),
	}

	codec := body.JSON

	if route.ParseBody {
		parsed, c, err := h.parser.Parse(req.Header, req.Body)
		if err != nil {
			log.Debug("failed to parse body", zap.Error(err))
			return newErrorResponse(err)
		}

		call.Body, codec = parsed, c
	}

	reply := route.Handle(ctx, call)

	res, err := render(reply, codec)
	if err != nil {
		log.Error("failed to render reply",
			zap.String("codec", codec.Name()),
			zap.Error(err),
		)
		return newErrorResponse(err)
	}

	return res
}

func (h *RouterHandler) recoverPanic(ctx context.Context, log *zap.Logger, r any) Response {
	log.Error("recovered from panic",
		zap.Any("panic", r),
		zap.Stack("stack"),
	)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.RecoverWithContext(ctx, r)

	return newErrorResponse(ErrInternal)
}
