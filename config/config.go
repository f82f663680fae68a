// Package config resolves symbolic configuration keys such as
// $conf.io.uart to the numeric literal text they stand for.
package config

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"
)

// Prefix starts every configuration key.
const Prefix = "$conf."

// Resolver maps a key to literal text.
type Resolver interface {
	Lookup(key string) (string, bool)
}

// Values is a flat key to literal table. Keys are case-insensitive.
type Values map[string]string

// Lookup returns the literal bound to key.
func (v Values) Lookup(key string) (string, bool) {
	s, ok := v[strings.ToLower(key)]
	return s, ok
}

// Set binds key to value.
func (v Values) Set(key, value string) {
	v[strings.ToLower(key)] = value
}

// Chain tries each resolver in order; the first hit wins.
type Chain []Resolver

// Lookup implements Resolver.
func (c Chain) Lookup(key string) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if s, ok := r.Lookup(key); ok {
			return s, true
		}
	}
	return "", false
}

// None resolves nothing.
var None Resolver = Values{}

var loadOptions = ini.LoadOptions{Insensitive: true}

// Parse reads INI-style settings. Entries under [section] become
// $conf.section.name, entries before any section $conf.name.
func Parse(r io.Reader) (Values, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, err
	}
	return fromFile(f)
}

// Load parses the settings file at path.
func Load(path string) (Values, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	v, err := fromFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// fromFile flattens every section into $conf keys.
func fromFile(f *ini.File) (Values, error) {
	v := Values{}
	for _, s := range f.Sections() {
		prefix := Prefix
		if !strings.EqualFold(s.Name(), ini.DefaultSection) {
			if strings.ContainsAny(s.Name(), " \t.") {
				return nil, fmt.Errorf("invalid section name %q", s.Name())
			}
			prefix = Prefix + s.Name() + "."
		}

		for _, k := range s.Keys() {
			name := k.Name()
			if strings.ContainsAny(name, " \t.") {
				return nil, fmt.Errorf("[%s] invalid name %q", s.Name(), name)
			}
			value := strings.TrimSpace(k.String())
			if value == "" {
				return nil, fmt.Errorf("[%s] %s has no value", s.Name(), name)
			}
			v.Set(prefix+name, value)
		}
	}
	return v, nil
}

// LoadAll loads several files into a Chain, earlier files taking precedence.
func LoadAll(paths ...string) (Chain, error) {
	var c Chain
	for _, p := range paths {
		v, err := Load(p)
		if err != nil {
			return nil, err
		}
		c = append(c, v)
	}
	return c, nil
}
