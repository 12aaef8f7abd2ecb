package chaosroom

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies which member of the Value union is set
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueBool
	ValueString
)

// Value is the closed union of scalar values found in effect, condition and
// tag maps: an integer, a boolean or a string.
type Value struct {
	kind ValueKind
	i    int
	b    bool
	s    string
}

// IntValue wraps an integer
func IntValue(n int) Value {
	return Value{kind: ValueInt, i: n}
}

// BoolValue wraps a boolean
func BoolValue(b bool) Value {
	return Value{kind: ValueBool, b: b}
}

// StringValue wraps a string
func StringValue(s string) Value {
	return Value{kind: ValueString, s: s}
}

// ValueOf converts a decoded scalar into a Value. Whole floats are accepted as
// integers since JSON decoders produce them for every number. Anything else
// reports false.
func ValueOf(raw any) (Value, bool) {
	switch v := raw.(type) {
	case Value:
		return v, true
	case int:
		return IntValue(v), true
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return Value{}, false
		}
		return IntValue(int(v)), true
	case uint64:
		if v > math.MaxInt32 {
			return Value{}, false
		}
		return IntValue(int(v)), true
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return Value{}, false
		}
		return IntValue(int(v)), true
	case bool:
		return BoolValue(v), true
	case string:
		return StringValue(v), true
	default:
		return Value{}, false
	}
}

// Kind returns the union member that is set
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns the integer and whether the value is an integer
func (v Value) Int() (int, bool) {
	return v.i, v.kind == ValueInt
}

// Bool returns the boolean and whether the value is a boolean
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == ValueBool
}

// Str returns the string and whether the value is a string
func (v Value) Str() (string, bool) {
	return v.s, v.kind == ValueString
}

// IsTrue reports whether the value is the boolean true
func (v Value) IsTrue() bool {
	return v.kind == ValueBool && v.b
}

func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.Itoa(v.i)
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueString:
		return strconv.Quote(v.s)
	default:
		return "<none>"
	}
}

// Interface returns the plain Go value, used when encoding
func (v Value) Interface() any {
	switch v.kind {
	case ValueInt:
		return v.i
	case ValueBool:
		return v.b
	case ValueString:
		return v.s
	default:
		return nil
	}
}

// GoString makes %#v output readable in test failures
func (v Value) GoString() string {
	return fmt.Sprintf("chaosroom.Value(%s)", v.String())
}
