package opt

import (
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which sets a value on a request
type Opt func(*Options) error

// Options is a set of applied options. Scalar values are held as strings
// so they can be passed directly as query parameters; anything else is held
// in a separate map.
type Options struct {
	url.Values
	any map[string]any
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options, or the first error
// returned by an option
func Apply(o ...Opt) (*Options, error) {
	opts := &Options{Values: make(url.Values), any: make(map[string]any)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the values for the given keys, for use as URL query parameters.
// Keys which are not set are omitted.
func (o *Options) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok && len(value) > 0 {
			query[key] = value
		}
	}
	return query
}

// Has returns true if the key exists as either a scalar or arbitrary value
func (o *Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.any[key]
	return ok
}

// GetString returns the value for key, or empty string if not set. The
// value is returned as set, including any surrounding whitespace.
func (o *Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// GetStringArray returns a copy of all values for key, as set
func (o *Options) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// GetBool returns the boolean value for key, or false if not set or invalid
func (o *Options) GetBool(key string) bool {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseBool(strings.TrimSpace(values[0])); err == nil {
			return v
		}
	}
	return false
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// GetInt returns the int value for key, or 0 if not set or invalid
func (o *Options) GetInt(key string) int {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return int(v)
		}
	}
	return 0
}

// Get returns an arbitrary value for key, or nil if not set
func (o *Options) Get(key string) any {
	return o.any[key]
}

// Set sets an arbitrary value for key. Setting nil removes the key.
func (o *Options) Set(key string, value any) {
	if value == nil {
		delete(o.any, key)
	} else {
		o.any[key] = value
	}
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces any existing values for key
func SetString(key string, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends values for key
func AddString(key string, values ...string) Opt {
	return func(o *Options) error {
		for _, v := range values {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint replaces any existing values for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatUint(uint64(value), 10))
		return nil
	}
}

// SetInt replaces any existing values for key
func SetInt(key string, value int) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatInt(int64(value), 10))
		return nil
	}
}

// SetFloat64 replaces any existing values for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetBool replaces any existing values for key
func SetBool(key string, value bool) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}

// SetAny sets an arbitrary value for key. A nil value removes both the
// arbitrary and scalar values for key.
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		if value == nil {
			o.Values.Del(key)
		}
		o.Set(key, value)
		return nil
	}
}

// Unset removes any values for key
func Unset(key string) Opt {
	return func(o *Options) error {
		o.Values.Del(key)
		delete(o.any, key)
		return nil
	}
}
