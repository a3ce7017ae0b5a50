package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field is a loosely typed request member. Storefront forms send numbers both
// as JSON numbers and as strings, so the raw token is kept and interpreted on
// demand.
type Field struct {
	raw json.RawMessage
}

// StringField builds a string member in code.
func StringField(s string) Field {
	b, _ := json.Marshal(s)
	return Field{raw: b}
}

func (f *Field) UnmarshalJSON(b []byte) error {
	f.raw = append(f.raw[:0], b...)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// Defined reports whether the member was present with a non-null value.
func (f Field) Defined() bool {
	return len(f.raw) > 0 && !bytes.Equal(f.raw, []byte("null"))
}

func (f Field) isString() bool {
	return len(f.raw) > 0 && f.raw[0] == '"'
}

// Text returns the string value, or the literal token for non-strings.
func (f Field) Text() string {
	if !f.Defined() {
		return ""
	}
	if f.isString() {
		var s string
		if err := json.Unmarshal(f.raw, &s); err == nil {
			return s
		}
	}
	return string(f.raw)
}

// Truthy follows JavaScript truthiness: empty strings, zero, false and null
// are falsy; everything else is truthy.
func (f Field) Truthy() bool {
	if !f.Defined() {
		return false
	}
	if f.isString() {
		return f.Text() != ""
	}
	switch string(f.raw) {
	case "false":
		return false
	case "true":
		return true
	}
	if f.raw[0] == '{' || f.raw[0] == '[' {
		return true
	}
	n, err := strconv.ParseFloat(string(f.raw), 64)
	return err == nil && n != 0
}

// Decimal parses the value as a decimal number.
func (f Field) Decimal() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(f.Text()))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Int parses the value the way JavaScript parseInt does.
func (f Field) Int() (int, bool) {
	return ParseInt(f.Text())
}

// ParseInt reads an optional sign and the leading run of decimal digits,
// ignoring anything after them, so "99.9" yields 99 and "12abc" yields 12.
// It fails when no digits lead the string.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
