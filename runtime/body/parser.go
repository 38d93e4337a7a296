package body

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// DefaultLimit is the default maximum body size in bytes.
const DefaultLimit int64 = 100 * 1024

// Config is the configuration of the body parser.
type Config struct {
	// Limit is the maximum size of a structured body in bytes, both
	// before and after content decoding. A value <= 0 disables it.
	Limit int64 `conf:"limit"`

	// Strict only accepts objects and arrays as top level values.
	Strict bool `conf:"strict"`
}

// DefaultConfig returns the parser defaults.
func DefaultConfig() Config {
	return Config{
		Limit:  DefaultLimit,
		Strict: false,
	}
}

// Parser decodes request bodies into Values based on the declared
// content type. It holds no per-request state.
type Parser struct {
	config Config
}

func NewParser(config Config) *Parser {
	return &Parser{config: config}
}

// Limit returns the configured size limit.
func (p *Parser) Limit() int64 {
	return p.config.Limit
}

// Parse decodes raw according to the Content-Type and Content-Encoding
// headers. It returns the decoded value and the codec that should be
// used to encode a structured response.
//
// A missing or unrecognized content type, as well as an empty body,
// yield an empty object and the JSON codec.
func (p *Parser) Parse(header http.Header, raw []byte) (Value, Codec, error) {
	codec, params, ok := lookupCodec(header.Get("Content-Type"))
	if !ok {
		return EmptyObject(), JSON, nil
	}

	var charset encoding.Encoding
	if codec == JSON {
		var err error
		if charset, err = lookupCharset(params["charset"]); err != nil {
			return Value{}, codec, err
		}
	}

	if p.exceedsLimit(int64(len(raw))) {
		return Value{}, codec, ErrBodyTooLarge
	}

	data, err := p.decodeContent(header.Get("Content-Encoding"), raw)
	if err != nil {
		return Value{}, codec, err
	}

	if len(data) == 0 {
		return EmptyObject(), codec, nil
	}

	if charset != nil {
		if data, err = charset.NewDecoder().Bytes(data); err != nil {
			return Value{}, codec, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
	}

	v, err := codec.Decode(data)
	if err != nil {
		return Value{}, codec, err
	}

	if p.config.Strict && v.Kind() != KindObject && v.Kind() != KindArray {
		return Value{}, codec, fmt.Errorf("%w: top level %s not allowed", ErrMalformedBody, v.Kind())
	}

	return v, codec, nil
}

func (p *Parser) exceedsLimit(n int64) bool {
	return p.config.Limit > 0 && n > p.config.Limit
}

// decodeContent undoes the content encoding of raw.
func (p *Parser) decodeContent(encoding string, raw []byte) ([]byte, error) {
	var r io.ReadCloser

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return raw, nil
	case "gzip", "x-gzip":
		gr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		r = gr
	case "deflate":
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		r = zr
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}
	defer r.Close()

	var src io.Reader = r
	if p.config.Limit > 0 {
		src = io.LimitReader(r, p.config.Limit+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if p.exceedsLimit(int64(len(data))) {
		return nil, ErrBodyTooLarge
	}

	return data, nil
}

// charsets lists the non utf-8 charsets accepted for JSON bodies.
// Without a byte order mark utf-16 and utf-32 are read little endian.
var charsets = map[string]encoding.Encoding{
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-32":   utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
}

// lookupCharset returns the decoder for a JSON charset parameter. A nil
// encoding means the body is utf-8 already.
func lookupCharset(charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}

	if enc, ok := charsets[name]; ok {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
}

// lookupCodec maps a Content-Type header to a codec.
func lookupCodec(contentType string) (Codec, map[string]string, bool) {
	if contentType == "" {
		return nil, nil, false
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil, false
	}

	switch {
	case mediaType == "application/json",
		strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"):
		return JSON, params, true
	case mediaType == "application/msgpack",
		mediaType == "application/x-msgpack",
		mediaType == "application/vnd.msgpack":
		return MessagePack, params, true
	}

	return nil, nil, false
}
