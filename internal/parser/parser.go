// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package parser - single pass tokenizer over the cli arguments and the post
// scan validations that run against the declared flags.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sargs/go-sargs/internal/schema"
	"github.com/sargs/go-sargs/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Run wraps it.
var ErrorParsing = errors.New("")

// ErrorMissingValue - A value flag was supplied without a value.
var ErrorMissingValue = fmt.Errorf("%w", ErrorParsing)

// ErrorMissingRequiredFlag - A required flag was not supplied.
var ErrorMissingRequiredFlag = fmt.Errorf("%w", ErrorParsing)

// ErrorWrongNonFlagCount - The non-flag arguments don't match the required count.
var ErrorWrongNonFlagCount = fmt.Errorf("%w", ErrorParsing)

// delimiter - the reserved token that starts the explicit non-flag section.
const delimiter = "--"

// Result - the populated outcome of a parse.
//
// Values maps each matched flag name to its value, with valueless flags
// stored as empty strings. After a successful run the values of two name
// flags are mirrored so lookups by either name succeed, and fallback
// injection may add entries for flags never seen on the command line.
type Result struct {
	Binary   string            // argv[0], captured verbatim
	Values   map[string]string // flag name or alias -> value
	NonFlags []string          // non-flag arguments in command line order
}

// Run - walks args once, classifying each token against the registry, then
// runs the post scan validations in order: non-flag count, value mirroring
// (required then optional), required presence.
//
// The returned Result is populated even on error so that callers can inspect
// what was matched before the failure (used for help flag detection).
// Fallback injection is the caller's responsibility, see InjectFallbacks:
// it must only run once the caller decides the parse is final.
func Run(reg *schema.Registry, binary string, args []string) (*Result, error) {
	res := &Result{
		Binary:   binary,
		Values:   make(map[string]string),
		NonFlags: []string{},
	}

	totalFlags := reg.Total()
	flagsSeen := 0
	delimited := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		Logger.Printf("token %d: %q", i, arg)

		if arg == delimiter {
			delimited = true
			continue
		}
		if delimited {
			res.NonFlags = append(res.NonFlags, arg)
			continue
		}

		matched := false
		switch {
		case isNonValueFlag(reg, arg):
			res.Values[arg] = ""
			matched = true
		case isValueFlag(reg, arg):
			if i+1 == len(args) {
				return res, fmt.Errorf(text.ErrorMissingValue+"%w", arg, ErrorMissingValue)
			}
			res.Values[arg] = args[i+1]
			i++
			matched = true
		default:
			// '--name=value' only counts as a flag when the text before the
			// '=' names a declared value flag. Everything else, including
			// flag lookalikes, is a non-flag argument.
			if idx := strings.IndexByte(arg, '='); idx >= 0 {
				if name := arg[:idx]; isValueFlag(reg, name) {
					res.Values[name] = arg[idx+1:]
					matched = true
				}
			}
			if !matched {
				res.NonFlags = append(res.NonFlags, arg)
			}
		}

		// Once every declared flag has been seen the rest of the command
		// line can only be non-flag arguments.
		if matched {
			flagsSeen++
			if flagsSeen >= totalFlags {
				delimited = true
			}
		}
	}

	if err := res.checkNonFlagCount(reg); err != nil {
		return res, err
	}
	if err := res.mirrorValues(reg.Required); err != nil {
		return res, err
	}
	if err := res.mirrorValues(reg.Optional); err != nil {
		return res, err
	}
	if err := res.checkMissing(reg.Required); err != nil {
		return res, err
	}
	return res, nil
}

func isNonValueFlag(reg *schema.Registry, name string) bool {
	f, ok := reg.Lookup(name)
	return ok && !f.TakesValue
}

func isValueFlag(reg *schema.Registry, name string) bool {
	f, ok := reg.Lookup(name)
	return ok && f.TakesValue
}
