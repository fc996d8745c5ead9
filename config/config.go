package config

import (
	"github.com/stretchr/objx"
)

type (
	Map   = objx.Map
	Value = objx.Value
)

// NewMap wraps a plain map in an objx.Map so providers can share the
// selector syntax.
func NewMap(vals map[string]interface{}) Map {
	return objx.New(vals)
}

// Config layers providers over a defaults map. Later providers win; the
// defaults are consulted last.
type Config struct {
	defaults  Map
	providers []Provider
}

// New returns a new config.
func New(defaults map[string]interface{}, providers ...Provider) *Config {
	return &Config{
		defaults:  objx.New(defaults),
		providers: providers,
	}
}

func (c *Config) reverseProviders() []Provider {
	var providers = make([]Provider, len(c.providers))
	for i, p := range c.providers {
		providers[len(c.providers)-i-1] = p
	}

	return providers
}

// Get returns the value of the given selector.
func (c *Config) Get(selector string) (val *Value, ok bool) {
	for _, p := range c.reverseProviders() {
		if val, ok = p.LookupPath(selector); ok {
			return
		}
	}

	val = c.defaults.Get(selector)
	ok = val.Data() != nil
	return
}

// DefaultsUpdate merges the given values into the defaults map.
func (c *Config) DefaultsUpdate(vals map[string]interface{}) Map {
	return c.defaults.MergeHere(objx.New(vals))
}

// All merges every provider's data, later providers winning.
func (c *Config) All() Map {
	var m = Map{}
	for _, p := range c.providers {
		m.MergeHere(p.Data())
	}

	return m
}

// Str returns the string value of the given selector.
func (c *Config) Str(selector string) string {
	val, ok := c.Get(selector)
	if !ok {
		return ""
	}
	return val.Str()
}

// StrOr returns the string value of the given selector, or the fallback
// when the selector is unset or empty.
func (c *Config) StrOr(selector, fallback string) string {
	if s := c.Str(selector); s != "" {
		return s
	}
	return fallback
}

// Int returns the int value of the given selector.
func (c *Config) Int(selector string) int {
	val, ok := c.Get(selector)
	if !ok {
		return 0
	}
	return val.Int()
}

// Bool returns the bool value of the given selector.
func (c *Config) Bool(selector string) bool {
	val, ok := c.Get(selector)
	if !ok {
		return false
	}
	return val.Bool()
}

// StringSlice returns the string slice value of the given selector.
func (c *Config) StringSlice(selector string) []string {
	val, ok := c.Get(selector)
	if !ok {
		return nil
	}
	return val.StrSlice()
}
