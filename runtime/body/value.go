package body

import (
	"strconv"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a structured body value. The zero Value is null.
//
// Objects keep their members in the order they were decoded in, and
// numbers keep the literal they were decoded from, so a decoded value
// can be encoded back without loss.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members []Member
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number returns a number value from its literal representation,
// e.g. "1", "-0.5" or "1e10".
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// Int returns a number value for an integer.
func Int(n int64) Value {
	return Number(strconv.FormatInt(n, 10))
}

// Float returns a number value for a float.
func Float(f float64) Value {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Array returns an array value holding the given items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindArray, items: items}
}

// Object returns an object value holding the given members. Later
// members replace earlier members with the same key, keeping the
// position of the first occurrence.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}

	return v
}

// EmptyObject returns an object without members.
func EmptyObject() Value {
	return Object()
}

func (v *Value) set(key string, value Value) {
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = value
			return
		}
	}

	v.members = append(v.members, Member{Key: key, Value: value})
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean and whether v is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsNumber returns the number literal and whether v is a number.
func (v Value) AsNumber() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}

	return v.text, true
}

// AsString returns the string and whether v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.text, true
}

// Items returns the items of an array, or nil for other kinds.
func (v Value) Items() []Value {
	return v.items
}

// Members returns the members of an object, or nil for other kinds.
func (v Value) Members() []Member {
	return v.members
}

// Get returns the member value for key if v is an object.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}

	return Value{}, false
}

// Len returns the number of items or members, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Equal reports whether a and b are structurally equal. Object member
// order is ignored; numbers compare by numeric value when their
// literals differ.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindString:
		return a.text == b.text
	case KindNumber:
		return numbersEqual(a.text, b.text)
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	}

	return false
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}

	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return false
	}

	return fa == fb
}
