// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parser

import (
	"fmt"

	"github.com/sargs/go-sargs/internal/schema"
	"github.com/sargs/go-sargs/text"
)

// checkNonFlagCount - validates the collected non-flag arguments against the
// required count. With the zero default any non-flag argument is an unknown
// argument.
func (r *Result) checkNonFlagCount(reg *schema.Registry) error {
	if len(r.NonFlags) == reg.NonFlagsRequired {
		return nil
	}
	if reg.NonFlagsRequired == 0 {
		return fmt.Errorf(text.ErrorUnknownArguments+"%w", ErrorWrongNonFlagCount)
	}
	return fmt.Errorf(text.ErrorWrongNonFlagCount+"%w", reg.NonFlagsRequired, ErrorWrongNonFlagCount)
}

// mirrorValues - for every flag matched under only one of its names, copies
// the value onto the other name so later lookups by either name succeed.
// A value flag that was supplied with an empty value, for example '--flag=',
// fails here: supplied-but-empty does not satisfy a value flag and a
// fallback never repairs it.
func (r *Result) mirrorValues(flags []*schema.Flag) error {
	for _, f := range flags {
		matched, other := "", ""
		if f.Name != "" {
			if _, ok := r.Values[f.Name]; ok {
				matched, other = f.Name, f.Alias
			}
		}
		if matched == "" && f.Alias != "" {
			if _, ok := r.Values[f.Alias]; ok {
				matched, other = f.Alias, f.Name
			}
		}
		if matched == "" {
			continue
		}
		if f.TakesValue && r.Values[matched] == "" {
			return fmt.Errorf(text.ErrorValueRequired+"%w", matched, ErrorMissingValue)
		}
		if other != "" {
			r.Values[other] = r.Values[matched]
		}
	}
	return nil
}

// checkMissing - fails on the first flag in the list that is present under
// neither of its names. Runs against the raw parse results, before fallback
// injection, so a fallback never masks a missing required flag.
func (r *Result) checkMissing(flags []*schema.Flag) error {
	for _, f := range flags {
		if f.Name != "" {
			if _, ok := r.Values[f.Name]; ok {
				continue
			}
		}
		if f.Alias != "" {
			if _, ok := r.Values[f.Alias]; ok {
				continue
			}
		}
		return fmt.Errorf(text.ErrorMissingRequiredFlag+"%w", f.DisplayName(), ErrorMissingRequiredFlag)
	}
	return nil
}

// InjectFallbacks - inserts the fallback value under both names of every
// declared flag with a non-empty fallback that is still absent from the
// results. Must run only after validation has passed.
func (r *Result) InjectFallbacks(reg *schema.Registry) {
	for _, f := range reg.Optional {
		r.injectFallback(f)
	}
	for _, f := range reg.Required {
		r.injectFallback(f)
	}
}

func (r *Result) injectFallback(f *schema.Flag) {
	if f.Fallback == "" {
		return
	}
	for _, name := range []string{f.Name, f.Alias} {
		if name == "" {
			continue
		}
		if _, ok := r.Values[name]; !ok {
			Logger.Printf("fallback %q=%q", name, f.Fallback)
			r.Values[name] = f.Fallback
		}
	}
}
