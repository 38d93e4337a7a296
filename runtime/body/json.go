package body

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) MediaType() string {
	return "application/json; charset=utf-8"
}

func (jsonCodec) Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	// only whitespace may follow the value
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: unexpected data after value", ErrMalformedBody)
	}

	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	obj := EmptyObject()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}

		val, err := decodeJSON(dec)
		if err != nil {
			return Value{}, err
		}

		obj.set(key, val)
	}

	if err := closeJSON(dec); err != nil {
		return Value{}, err
	}

	return obj, nil
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	items := []Value{}

	for dec.More() {
		item, err := decodeJSON(dec)
		if err != nil {
			return Value{}, err
		}

		items = append(items, item)
	}

	if err := closeJSON(dec); err != nil {
		return Value{}, err
	}

	return Array(items...), nil
}

// closeJSON consumes the closing delimiter of an object or array.
func closeJSON(dec *json.Decoder) error {
	_, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

func (jsonCodec) Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if !json.Valid([]byte(v.text)) {
			return fmt.Errorf("number %q has no json representation", v.text)
		}
		buf.WriteString(v.text)
	case KindString:
		return writeJSONString(buf, v.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown kind %d", v.kind)
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	// drop the newline appended by Encode
	buf.Truncate(buf.Len() - 1)

	return nil
}

// MarshalJSON encodes v with the JSON codec.
func (v Value) MarshalJSON() ([]byte, error) {
	return JSON.Encode(v)
}

// UnmarshalJSON decodes data with the JSON codec.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := JSON.Decode(data)
	if err != nil {
		return err
	}

	*v = decoded

	return nil
}
