// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package schema - flag declarations and the registry that holds them.
package schema

import (
	"fmt"
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Flag - a single declared flag.
// Flags are created at declaration time, before parsing, and are immutable
// afterwards. At least one of Name/Alias must be non-empty.
type Flag struct {
	Name        string // Primary name including its marker, e.g. "--foo"
	Alias       string // Short form, e.g. "-f"; may be empty
	Description string // Used for help text
	TakesValue  bool   // Whether a value must follow or be attached with '='
	Fallback    string // Substituted after validation when the flag is absent
}

// DisplayName - the name used to refer to the flag in user facing messages.
func (f *Flag) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Alias
}

// Other - given one of the flag's names, returns the other one.
// Returns an empty string when the flag only has one name.
func (f *Flag) Other(name string) string {
	if name == f.Name {
		return f.Alias
	}
	return f.Name
}

// Registry - the set of declared flags plus the non-flag count requirement.
//
// Required and Optional preserve declaration order, used both for validation
// order and for help rendering. The index allows constant time lookups by
// either of a flag's names.
type Registry struct {
	Required []*Flag
	Optional []*Flag

	// NonFlagsRequired - how many non-flag arguments the command line must
	// carry. The zero default means non-flag arguments are rejected.
	NonFlagsRequired int

	index map[string]*Flag // keyed by name and alias
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]*Flag)}
}

// AddRequired - appends a flag to the required list.
// Panics on programmer error, see register.
func (r *Registry) AddRequired(f *Flag) {
	r.register(f)
	r.Required = append(r.Required, f)
}

// AddOptional - appends a flag to the optional list.
// Panics on programmer error, see register.
func (r *Registry) AddOptional(f *Flag) {
	r.register(f)
	r.Optional = append(r.Optional, f)
}

// register will *panic* on malformed declarations: a flag without any name,
// a fallback on a flag that takes no value, or a name/alias that collides
// with a previous declaration. These are not runtime errors because the
// programmer has to fix them!
func (r *Registry) register(f *Flag) {
	Logger.Printf("registering flag %s", f.DisplayName())
	if f.Name == "" && f.Alias == "" {
		panic("flag declaration needs a name or an alias")
	}
	if f.Fallback != "" && !f.TakesValue {
		panic(fmt.Sprintf("flag '%s' takes no value but declares fallback '%s'", f.DisplayName(), f.Fallback))
	}
	for _, name := range []string{f.Name, f.Alias} {
		if name == "" {
			continue
		}
		if prior, ok := r.index[name]; ok {
			panic(fmt.Sprintf("'%s' is already defined in flag '%s'", name, prior.DisplayName()))
		}
		r.index[name] = f
	}
}

// Lookup - find a flag by any of its names.
func (r *Registry) Lookup(name string) (*Flag, bool) {
	f, ok := r.index[name]
	return f, ok
}

// Alternative - given one of a declared flag's names, returns the other one.
// Returns an empty string for unknown names or single name flags.
func (r *Registry) Alternative(name string) string {
	if f, ok := r.Lookup(name); ok {
		return f.Other(name)
	}
	return ""
}

// Total - number of declared flags, required plus optional.
func (r *Registry) Total() int {
	return len(r.Required) + len(r.Optional)
}
