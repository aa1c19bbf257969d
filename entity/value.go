package entity

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Item is a single row of a collection, keyed by field name.
type Item map[string]any

// Get returns the value for field and whether it is present and non-nil.
func (item Item) Get(field string) (val Value, ok bool) {

	raw, ok := item[field]
	if !ok || raw == nil {
		return Value{}, false
	}

	return Value{Raw: raw}, true
}

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string, empty for nil.
func (v Value) String() string {
	str, err := v.Str()
	if err != nil {
		return ""
	}
	return str
}

// Str returns the value as a string or an error when it has no string form.
func (v Value) Str() (string, error) {
	str, err := cast.ToStringE(v.Raw)
	return str, errors.Wrapf(err, "value has no string form: %T", v.Raw)
}

// Numeric is true when the underlying value is a Go number.
func (v Value) Numeric() bool {
	switch v.Raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	i, err := cast.ToIntE(v.Raw)
	return i, errors.Wrapf(err, "value is not an int: %T", v.Raw)
}

// Float returns the value as a float64, parsing strings.
func (v Value) Float() (float64, error) {
	f, err := cast.ToFloat64E(v.Raw)
	return f, errors.Wrapf(err, "value is not a number: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time, parsing strings.
func (v Value) Time() (time.Time, error) {
	if v.Raw == nil {
		return time.Time{}, errors.Errorf("value is nil")
	}
	t, err := cast.ToTimeE(v.Raw)
	return t, errors.Wrapf(err, "value is not a time: %T", v.Raw)
}
