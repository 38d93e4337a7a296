package body

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

type msgpackCodec struct{}

func (msgpackCodec) Name() string {
	return "msgpack"
}

func (msgpackCodec) MediaType() string {
	return "application/msgpack"
}

func (msgpackCodec) Decode(data []byte) (Value, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)

	v, err := decodeMsgpack(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if r.Len() > 0 {
		return Value{}, fmt.Errorf("%w: unexpected data after value", ErrMalformedBody)
	}

	return v, nil
}

func decodeMsgpack(dec *msgpack.Decoder) (Value, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return Value{}, err
	}

	switch {
	case c == msgpcode.Nil:
		return Null(), dec.DecodeNil()
	case c == msgpcode.True || c == msgpcode.False:
		b, err := dec.DecodeBool()
		return Bool(b), err
	case c == msgpcode.Float:
		f, err := dec.DecodeFloat32()
		return Number(strconv.FormatFloat(float64(f), 'g', -1, 32)), err
	case c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		return Float(f), err
	case c == msgpcode.Uint64:
		n, err := dec.DecodeUint64()
		return Number(strconv.FormatUint(n, 10)), err
	case msgpcode.IsFixedNum(c),
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32,
		c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64:
		n, err := dec.DecodeInt64()
		return Int(n), err
	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		return String(s), err
	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		return String(string(b)), err
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		return decodeMsgpackArray(dec)
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return decodeMsgpackMap(dec)
	}

	return Value{}, fmt.Errorf("unsupported msgpack code 0x%x", c)
}

func decodeMsgpackArray(dec *msgpack.Decoder) (Value, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return Value{}, err
	}

	// n comes from the wire, grow with the items actually present
	var items []Value
	for i := 0; i < n; i++ {
		item, err := decodeMsgpack(dec)
		if err != nil {
			return Value{}, err
		}

		items = append(items, item)
	}

	return Array(items...), nil
}

func decodeMsgpackMap(dec *msgpack.Decoder) (Value, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return Value{}, err
	}

	obj := EmptyObject()
	for i := 0; i < n; i++ {
		c, err := dec.PeekCode()
		if err != nil {
			return Value{}, err
		}

		// keys must be representable in every supported encoding
		if !msgpcode.IsString(c) {
			return Value{}, fmt.Errorf("unsupported map key code 0x%x", c)
		}

		key, err := dec.DecodeString()
		if err != nil {
			return Value{}, err
		}

		val, err := decodeMsgpack(dec)
		if err != nil {
			return Value{}, err
		}

		obj.set(key, val)
	}

	return obj, nil
}

func (msgpackCodec) Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeMsgpack(msgpack.NewEncoder(&buf), v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeMsgpack(enc *msgpack.Encoder, v Value) error {
	switch v.kind {
	case KindNull:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(v.boolean)
	case KindNumber:
		return writeMsgpackNumber(enc, v.text)
	case KindString:
		return enc.EncodeString(v.text)
	case KindArray:
		if err := enc.EncodeArrayLen(len(v.items)); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := writeMsgpack(enc, item); err != nil {
				return err
			}
		}
		return nil
	case KindObject:
		if err := enc.EncodeMapLen(len(v.members)); err != nil {
			return err
		}
		for _, m := range v.members {
			if err := enc.EncodeString(m.Key); err != nil {
				return err
			}
			if err := writeMsgpack(enc, m.Value); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown kind %d", v.kind)
}

func writeMsgpackNumber(enc *msgpack.Encoder, literal string) error {
	if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return enc.EncodeInt(n)
	}

	if n, err := strconv.ParseUint(literal, 10, 64); err == nil {
		return enc.EncodeUint(n)
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return fmt.Errorf("number %q has no msgpack representation: %w", literal, err)
	}

	return enc.EncodeFloat64(f)
}
