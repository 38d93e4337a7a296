package runtime

import (
	"context"
	"net/http"

	"github.com/lambda-feedback/parrot/runtime/body"
)

// Request represents an incoming request.
type Request struct {
	Path   string
	Method string
	Body   []byte
	Header http.Header
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Call is the input passed to a route.
type Call struct {
	// Request is the request that was routed.
	Request Request

	// Body is the parsed request body. It is an empty object for
	// routes that do not parse the body.
	Body body.Value
}

// Reply is the output of a route. It carries either plain text or a
// structured value.
type Reply struct {
	StatusCode int
	Text       string
	Data       body.Value
	Structured bool
}

// TextReply creates a plain text reply.
func TextReply(status int, text string) Reply {
	return Reply{
		StatusCode: status,
		Text:       text,
	}
}

// DataReply creates a structured reply.
func DataReply(status int, data body.Value) Reply {
	return Reply{
		StatusCode: status,
		Data:       data,
		Structured: true,
	}
}

// RouteFunc handles a routed call. It must not retain the call.
type RouteFunc func(ctx context.Context, call Call) Reply

// Route binds a method and path to a RouteFunc.
type Route struct {
	// Method is the exact HTTP method to match.
	Method string

	// Path is the exact URL path to match.
	Path string

	// ParseBody makes the handler parse the request body before the
	// route is invoked. Body errors then short-circuit the request.
	ParseBody bool

	// Handle is invoked for matching requests.
	Handle RouteFunc
}

// Routes is the ordered route table.
type Routes []Route
