package runtime_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/parrot/runtime"
	"github.com/lambda-feedback/parrot/runtime/body"
)

func setupLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

func testRoutes() runtime.Routes {
	return runtime.Routes{
		{
			Method: http.MethodGet,
			Path:   "/text",
			Handle: func(context.Context, runtime.Call) runtime.Reply {
				return runtime.TextReply(http.StatusOK, "plain")
			},
		},
		{
			Method:    http.MethodPost,
			Path:      "/mirror",
			ParseBody: true,
			Handle: func(_ context.Context, call runtime.Call) runtime.Reply {
				return runtime.DataReply(http.StatusOK, call.Body)
			},
		},
		{
			Method: http.MethodGet,
			Path:   "/panic",
			Handle: func(context.Context, runtime.Call) runtime.Reply {
				panic("boom")
			},
		},
		{
			Method: http.MethodGet,
			Path:   "/nan",
			Handle: func(context.Context, runtime.Call) runtime.Reply {
				return runtime.DataReply(http.StatusOK, body.Number("NaN"))
			},
		},
		{
			Method: http.MethodGet,
			Path:   "/body",
			Handle: func(_ context.Context, call runtime.Call) runtime.Reply {
				return runtime.DataReply(http.StatusOK, call.Body)
			},
		},
	}
}

func setupHandler(t *testing.T, config body.Config) runtime.Handler {
	return runtime.NewRouterHandler(runtime.HandlerParams{
		Routes: testRoutes(),
		Parser: body.NewParser(config),
		Log:    setupLogger(t),
	})
}

func createRequest(method, path string, b []byte, header http.Header) runtime.Request {
	if header == nil {
		header = make(http.Header)
	}

	return runtime.Request{
		Method: method,
		Path:   path,
		Body:   b,
		Header: header,
	}
}

func jsonHeader() http.Header {
	return http.Header{"Content-Type": []string{"application/json"}}
}

func TestRouterHandler_Handle_Text(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	resp := handler.Handle(context.Background(), createRequest(http.MethodGet, "/text", nil, nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "plain", string(resp.Body))
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestRouterHandler_Handle_JSON(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	in := `{"a":1,"b":[true,null]}`
	resp := handler.Handle(context.Background(), createRequest(http.MethodPost, "/mirror", []byte(in), jsonHeader()))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, in, string(resp.Body))
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestRouterHandler_Handle_MessagePack(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	in, err := msgpack.Marshal(map[string]any{"k": []any{"v", 1}})
	require.NoError(t, err)

	resp := handler.Handle(context.Background(), createRequest(http.MethodPost, "/mirror", in, http.Header{
		"Content-Type": []string{"application/msgpack"},
	}))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/msgpack", resp.Header.Get("Content-Type"))

	var out map[string]any
	require.NoError(t, msgpack.Unmarshal(resp.Body, &out))
	assert.Equal(t, "v", out["k"].([]any)[0])
}

func TestRouterHandler_Handle_BodyErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		header http.Header
		config body.Config
		status int
	}{
		{
			name:   "malformed",
			body:   []byte(`{invalid`),
			header: jsonHeader(),
			config: body.DefaultConfig(),
			status: http.StatusBadRequest,
		},
		{
			name:   "too large",
			body:   []byte(`{"a":"long enough"}`),
			header: jsonHeader(),
			config: body.Config{Limit: 4},
			status: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "charset",
			body:   []byte(`{}`),
			header: http.Header{"Content-Type": []string{"application/json; charset=utf-16"}},
			config: body.DefaultConfig(),
			status: http.StatusUnsupportedMediaType,
		},
		{
			name: "encoding",
			body: []byte(`{}`),
			header: http.Header{
				"Content-Type":     []string{"application/json"},
				"Content-Encoding": []string{"compress"},
			},
			config: body.DefaultConfig(),
			status: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupHandler(t, tt.config)

			resp := handler.Handle(context.Background(), createRequest(http.MethodPost, "/mirror", tt.body, tt.header))

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
			assert.Contains(t, string(resp.Body), `"error"`)
		})
	}
}

func TestRouterHandler_Handle_BodyNotParsedForOtherRoutes(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	resp := handler.Handle(context.Background(), createRequest(http.MethodGet, "/body", []byte(`{invalid`), jsonHeader()))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{}`, string(resp.Body))
}

func TestRouterHandler_Handle_NotFound(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	tests := []struct{ method, path string }{
		{http.MethodGet, "/unknown"},
		{http.MethodDelete, "/mirror"},
		{http.MethodGet, "/mirror"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := handler.Handle(context.Background(), createRequest(tt.method, tt.path, []byte(`{invalid`), jsonHeader()))

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "Not Found", string(resp.Body))
		})
	}
}

func TestRouterHandler_Handle_RecoversPanic(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	resp := handler.Handle(context.Background(), createRequest(http.MethodGet, "/panic", nil, nil))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(resp.Body), "boom")

	// subsequent requests are unaffected
	resp = handler.Handle(context.Background(), createRequest(http.MethodGet, "/text", nil, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouterHandler_Handle_RenderFailure(t *testing.T) {
	handler := setupHandler(t, body.DefaultConfig())

	resp := handler.Handle(context.Background(), createRequest(http.MethodGet, "/nan", nil, nil))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"internal server error"}}`, string(resp.Body))
}
