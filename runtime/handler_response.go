package runtime

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lambda-feedback/parrot/runtime/body"
)

const textContentType = "text/plain; charset=utf-8"

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	for wellKnown, status := range wellKnownErrors {
		if errors.Is(err, wellKnown) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// newErrorResponse creates a new error response. Errors without a
// well known status are reported as internal errors without details.
func newErrorResponse(err error) Response {
	statusCode := getErrorStatusCode(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		message = ErrInternal.Error()
	}

	type responseError struct {
		Message string `json:"message"`
	}

	data, err := json.Marshal(struct {
		Error responseError `json:"error"`
	}{
		Error: responseError{Message: message},
	})
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Header: make(http.Header)}
	}

	return newResponse(statusCode, "application/json; charset=utf-8", data)
}

// newResponse creates a new response.
func newResponse(status int, contentType string, body []byte) Response {
	header := make(http.Header)
	header.Set("Content-Type", contentType)

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}

// render serializes a reply. Structured data is encoded with codec.
func render(reply Reply, codec body.Codec) (Response, error) {
	if !reply.Structured {
		return newResponse(reply.StatusCode, textContentType, []byte(reply.Text)), nil
	}

	data, err := codec.Encode(reply.Data)
	if err != nil {
		return Response{}, err
	}

	return newResponse(reply.StatusCode, codec.MediaType(), data), nil
}
