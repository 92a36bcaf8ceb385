// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - usage text generation for declared flags.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sargs/go-sargs/internal/schema"
	"github.com/sargs/go-sargs/text"
)

// Preamble - Returns the one line synopsis: optional flags in brackets
// first, then required flags, then non-flag placeholders when a non-flag
// count is configured.
func Preamble(binary string, reg *schema.Registry) string {
	out := text.HelpUsagePrefix + " " + binary + " "
	for _, f := range reg.Optional {
		out += "[" + synopsis(f) + "] "
	}
	for _, f := range reg.Required {
		out += synopsis(f) + " "
	}
	if reg.NonFlagsRequired > 0 {
		out += "<--> "
		for i := 0; i < reg.NonFlagsRequired; i++ {
			out += fmt.Sprintf("nonflag%d ", i+1)
		}
	}
	return out + "\n"
}

// synopsis - '--flag=value|-f=value' for value flags, '--flag|-f' otherwise.
func synopsis(f *schema.Flag) string {
	out := ""
	if f.Name != "" {
		out = mark(f.Name, f.TakesValue)
	}
	if f.Alias != "" {
		if out != "" {
			out += "|"
		}
		out += mark(f.Alias, f.TakesValue)
	}
	return out
}

func mark(name string, takesValue bool) string {
	if takesValue {
		return name + "=value"
	}
	return name
}

// FlagList - Returns the flag description block: a required flags section
// and an optional flags section, both in declaration order, each entry
// padded to the description start column with its description wrapped at
// the given width.
func FlagList(reg *schema.Registry, column, width int) string {
	out := ""
	if len(reg.Required) > 0 {
		out += "\n  " + text.HelpRequiredFlagsHeader + ":\n"
		out += flagSection(reg.Required, column, width)
	}
	if len(reg.Optional) > 0 {
		out += "\n  " + text.HelpOptionalFlagsHeader + ":\n"
		out += flagSection(reg.Optional, column, width)
	}
	if reg.NonFlagsRequired > 0 {
		out += "\n  " + fmt.Sprintf(text.HelpNonFlagsRequired, reg.NonFlagsRequired) + "\n"
	}
	return out
}

func flagSection(flags []*schema.Flag, column, width int) string {
	out := ""
	for _, f := range flags {
		ids := "    " + mark(f.Name, f.TakesValue && f.Name != "")
		if f.Name != "" && f.Alias != "" {
			ids += "/"
		}
		if f.Alias != "" {
			ids += mark(f.Alias, f.TakesValue)
		}
		out += pad(ids, column) + Wrap(f.Description, width, column) + "\n"
	}
	return out
}

// pad - Given a string and a padding factor it will return the string padded
// with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// Wrap - word wraps text at width, indenting continuation lines to column.
// Breaks only at a blank, scanning backward from the width limit. A single
// unbroken word longer than the width is cut at the width so wrapping always
// makes progress. Degenerate layout values are clamped: a width below 1 wraps
// at every byte, a negative column indents with nothing.
func Wrap(s string, width, column int) string {
	if width < 1 {
		width = 1
	}
	if column < 0 {
		column = 0
	}
	if len(s) <= width {
		return s
	}
	indent := "\n" + strings.Repeat(" ", column)
	lines := []string{}
	for len(s) > width {
		cut := strings.LastIndexByte(s[:width], ' ')
		if cut <= 0 {
			cut = width
		}
		lines = append(lines, strings.TrimRight(s[:cut], " "))
		s = strings.TrimLeft(s[cut:], " ")
	}
	if s != "" {
		lines = append(lines, s)
	}
	return strings.Join(lines, indent)
}
