package body

import (
	"errors"
)

var (
	ErrMalformedBody       = errors.New("malformed body")
	ErrBodyTooLarge        = errors.New("body too large")
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
	ErrUnsupportedCharset  = errors.New("unsupported charset")
)

// Codec decodes and encodes Values in a structured encoding.
type Codec interface {
	// Name is a short identifier used in logs, e.g. "json".
	Name() string

	// MediaType is the content type set on encoded responses.
	MediaType() string

	// Decode decodes exactly one value from data. Errors wrap
	// ErrMalformedBody.
	Decode(data []byte) (Value, error)

	// Encode encodes v.
	Encode(v Value) ([]byte, error)
}

var (
	// JSON is the codec for application/json and application/*+json.
	JSON Codec = jsonCodec{}

	// MessagePack is the codec for application/msgpack.
	MessagePack Codec = msgpackCodec{}
)
