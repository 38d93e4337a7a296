package handler

import (
	"context"
	"net/http"

	"github.com/lambda-feedback/parrot/runtime"
)

// Echo replies with the parsed request body, unchanged.
func Echo(_ context.Context, call runtime.Call) runtime.Reply {
	return runtime.DataReply(http.StatusOK, call.Body)
}
