package valueobjects

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	pkgerrors "graphlens/pkg/errors"
)

// ValueKind identifies the runtime type of an attribute value
type ValueKind string

const (
	KindString    ValueKind = "string"
	KindNumber    ValueKind = "number"
	KindBool      ValueKind = "boolean"
	KindTimestamp ValueKind = "timestamp"
)

// timestampFormats are tried in order when coercing a literal to a timestamp
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Value is an immutable tagged union over the scalar types an attribute
// may hold: string, number, boolean, or timestamp. The zero Value is a
// valid empty string.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	ts   time.Time
}

// StringValue creates a string Value
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue creates a number Value
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// BoolValue creates a boolean Value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// TimestampValue creates a timestamp Value
func TimestampValue(t time.Time) Value {
	return Value{kind: KindTimestamp, ts: t}
}

// Kind returns the runtime type of the value
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return KindString
	}
	return v.kind
}

// AsString returns the string payload when the value is a string
func (v Value) AsString() (string, bool) {
	return v.str, v.Kind() == KindString
}

// AsNumber returns the numeric payload when the value is a number
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.Kind() == KindNumber
}

// AsBool returns the boolean payload when the value is a boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.Kind() == KindBool
}

// AsTimestamp returns the time payload when the value is a timestamp
func (v Value) AsTimestamp() (time.Time, bool) {
	return v.ts, v.Kind() == KindTimestamp
}

// String renders the value as text regardless of its kind
func (v Value) String() string {
	switch v.Kind() {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTimestamp:
		return v.ts.Format(time.RFC3339)
	default:
		return v.str
	}
}

// Equal reports value equality; values of different kinds are never equal
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindTimestamp:
		return v.ts.Equal(other.ts)
	default:
		return v.str == other.str
	}
}

// Ordered reports whether the value supports ordering comparisons
func (v Value) Ordered() bool {
	k := v.Kind()
	return k == KindNumber || k == KindTimestamp
}

// Compare orders two values of the same orderable kind. It returns a
// negative, zero, or positive result like strings.Compare. Calling it
// on unordered or mismatched kinds yields a validation error.
func (v Value) Compare(other Value) (int, error) {
	if v.Kind() != other.Kind() {
		return 0, pkgerrors.NewValidationError("cannot compare %s with %s", v.Kind(), other.Kind())
	}
	switch v.Kind() {
	case KindNumber:
		switch {
		case v.num < other.num:
			return -1, nil
		case v.num > other.num:
			return 1, nil
		default:
			return 0, nil
		}
	case KindTimestamp:
		switch {
		case v.ts.Before(other.ts):
			return -1, nil
		case v.ts.After(other.ts):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, pkgerrors.NewValidationError("%s values are not ordered", v.Kind())
	}
}

// CoerceLiteral parses a textual literal into a Value of the given kind.
// Boolean coercion follows the permissive rule: "true", "1" and "yes"
// (case-insensitive) are true, anything else is false and never fails.
func CoerceLiteral(literal string, kind ValueKind) (Value, error) {
	switch kind {
	case KindNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(literal), 64)
		if err != nil {
			return Value{}, pkgerrors.NewValidationError("'%s' is not a valid number", literal)
		}
		return NumberValue(f), nil
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(literal)) {
		case "true", "1", "yes":
			return BoolValue(true), nil
		default:
			return BoolValue(false), nil
		}
	case KindTimestamp:
		trimmed := strings.TrimSpace(literal)
		for _, layout := range timestampFormats {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return TimestampValue(t), nil
			}
		}
		return Value{}, pkgerrors.NewValidationError("'%s' is not a valid timestamp", literal)
	default:
		return StringValue(literal), nil
	}
}

// MarshalJSON renders the native payload of the value
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindTimestamp:
		return json.Marshal(v.ts.Format(time.RFC3339))
	default:
		return json.Marshal(v.str)
	}
}
