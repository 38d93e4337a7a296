package handler

import (
	"context"
	"net/http"

	"github.com/lambda-feedback/parrot/runtime"
)

// Health reports liveness. It ignores the request entirely.
func Health(context.Context, runtime.Call) runtime.Reply {
	return runtime.TextReply(http.StatusOK, "OK")
}
