// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package sargs - simple command line argument parsing and validation.

Declare the flags a program expects, hand over the argument vector, and read
the results back through typed accessors. The library is aimed at programs
that want flag parsing without adopting a heavyweight dependency.

Usage

The following is a basic example:

	args := sargs.New()
	args.RequiredFlagValue("--input", "-i", "Input file to read", "")
	args.OptionalFlagValue("--threads", "-t", "Worker count", "4")
	args.OptionalFlag("--verbose", "-v", "Enable verbose output")
	args.RequireNonFlags(1)

	// Prints usage and exits on bad input or --help/-h.
	args.Initialize(os.Args)

	input := args.GetString("--input")
	threads := args.GetInt32("--threads") // 4 unless -t/--threads was given
	if args.Has("-v") {
		// ...
	}
	target := args.NonFlag(0)

Features

* Required and optional flags, with or without values.

* Short form aliases. A flag's value is retrievable by either name.

* Values attached with '=' ('--flag=value') or as the following token
('--flag value').

* '--' stops flag parsing; everything after it is a non-flag argument. Once
every declared flag has been seen the delimiter is implied.

* Fallback values injected for flags absent from the command line.

* Generated usage text with word wrapped flag descriptions, each part
replaceable.

* Automatic '--help'/'-h' handling, and configuration to disable help,
usage printing, or exiting so the caller stays in control.

For callers that want errors instead of process exits, Parse is the
non-printing, non-exiting core and the Lookup accessor forms report typed
errors distinguishable with errors.Is.

Panic

The library will panic at declaration time if the programmer declares the
same flag name twice, declares a flag with no names at all, or attaches a
fallback to a flag that takes no value.
*/
package sargs

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sargs/go-sargs/internal/help"
	"github.com/sargs/go-sargs/internal/parser"
	"github.com/sargs/go-sargs/internal/schema"
	"github.com/sargs/go-sargs/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer where usage output is written to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// exitFn - This variable allows to test os.Exit calls.
var exitFn = os.Exit

// Default layout values for the flag description block.
const (
	DefaultDescriptionColumn = 30
	DefaultDescriptionWidth  = 50
)

// Names used for the auto registered help flag.
const (
	HelpFlag      = "--help"
	HelpFlagAlias = "-h"
)

// Args - main object: holds the declared flags, the configuration and, after
// parsing, the results.
//
// Each Args value is independently owned. Instances don't share state, so
// separate instances may parse concurrently; a single instance must not.
type Args struct {
	registry *schema.Registry
	result   *parser.Result

	preamble        string
	epilogue        string
	flagDescription string

	customPreamble        bool
	customFlagDescription bool

	helpEnabled  bool
	usageEnabled bool
	exitEnabled  bool

	descColumn int
	descWidth  int
}

// New returns an empty object of type Args.
// This is the starting point when using go-sargs.
// For example:
//
//	args := sargs.New()
func New() *Args {
	return &Args{
		registry:     schema.New(),
		helpEnabled:  true,
		usageEnabled: true,
		exitEnabled:  true,
		descColumn:   DefaultDescriptionColumn,
		descWidth:    DefaultDescriptionWidth,
	}
}

// RequiredFlag - declare a flag that must be present and carries no value.
func (a *Args) RequiredFlag(flag, alias, description string) *Args {
	a.registry.AddRequired(&schema.Flag{Name: flag, Alias: alias, Description: description})
	return a
}

// RequiredFlagValue - declare a flag that must be present and carries a
// value. The fallback is only meaningful when combined with DisableExit or
// custom handling: a required flag missing from the command line is an error
// before fallbacks apply.
func (a *Args) RequiredFlagValue(flag, alias, description, fallback string) *Args {
	a.registry.AddRequired(&schema.Flag{Name: flag, Alias: alias, Description: description, TakesValue: true, Fallback: fallback})
	return a
}

// OptionalFlag - declare a flag that may be present and carries no value.
func (a *Args) OptionalFlag(flag, alias, description string) *Args {
	a.registry.AddOptional(&schema.Flag{Name: flag, Alias: alias, Description: description})
	return a
}

// OptionalFlagValue - declare a flag that may be present and carries a
// value. When absent and fallback is non-empty, the fallback becomes the
// flag's value after a successful parse.
func (a *Args) OptionalFlagValue(flag, alias, description, fallback string) *Args {
	a.registry.AddOptional(&schema.Flag{Name: flag, Alias: alias, Description: description, TakesValue: true, Fallback: fallback})
	return a
}

// RequireNonFlags - require exactly count non-flag arguments.
// The default of 0 rejects any non-flag argument.
func (a *Args) RequireNonFlags(count int) *Args {
	a.registry.NonFlagsRequired = count
	return a
}

// Parse - validate the given argument list against the declared flags.
//
// binary is the program name (argv[0] equivalent) captured for the usage
// synopsis; args are the remaining tokens. Parse never prints and never
// exits: it returns an error that wraps ErrorParsing, leaving the caller in
// full control. Calling Parse again re-parses from scratch against the same
// declarations.
func (a *Args) Parse(binary string, args []string) error {
	if a.helpEnabled {
		if _, ok := a.registry.Lookup(HelpFlag); !ok {
			a.OptionalFlag(HelpFlag, HelpFlagAlias, text.HelpFlagDescription)
		}
	}
	res, err := parser.Run(a.registry, binary, args)
	a.result = res
	a.generateUsage()
	if err != nil {
		Logger.Printf("parse error: %s", err)
		return err
	}
	res.InjectFallbacks(a.registry)
	return nil
}

// Initialize - convenience entry point over Parse for the common case.
//
// It takes the full argument vector (os.Args), parses it, and on a parse
// error or a help request prints the usage text to Writer (unless usage
// printing is disabled) and exits the process (unless exiting is disabled)
// with status 0 for help and 1 for errors. With exiting disabled it returns
// the parse error, or ErrorHelpCalled when help was requested.
func (a *Args) Initialize(args []string) error {
	binary := ""
	if len(args) > 0 {
		binary = args[0]
		args = args[1:]
	}
	err := a.Parse(binary, args)
	helpCalled := a.helpEnabled && (a.Has(HelpFlag) || a.Has(HelpFlagAlias))
	if err == nil && !helpCalled {
		return nil
	}

	if a.usageEnabled {
		a.PrintUsage(Writer)
		if err != nil {
			fmt.Fprintf(Writer, "\nError: %s\n", err)
		}
	}
	if a.exitEnabled {
		if err == nil {
			exitFn(0)
		} else {
			exitFn(1)
		}
	}
	if err == nil {
		return ErrorHelpCalled
	}
	return err
}

// generateUsage - refresh the generated usage parts. Parts replaced by the
// caller are left alone.
func (a *Args) generateUsage() {
	if !a.customPreamble {
		a.preamble = help.Preamble(a.result.Binary, a.registry)
	}
	if !a.customFlagDescription {
		a.flagDescription = help.FlagList(a.registry, a.descColumn, a.descWidth)
	}
}

// Usage - the full usage text: preamble, flag descriptions and epilogue.
// The generated parts are only available after Parse or Initialize; parts
// set with SetPreamble/SetFlagDescription/SetEpilogue are always included.
func (a *Args) Usage() string {
	return a.preamble + a.flagDescription + a.epilogue
}

// PrintUsage - write the usage text to the given writer.
func (a *Args) PrintUsage(w io.Writer) {
	fmt.Fprint(w, a.Usage())
}

// DisableHelp - don't auto register the --help/-h flag pair.
// Must be called before Parse or Initialize.
func (a *Args) DisableHelp() *Args {
	a.helpEnabled = false
	return a
}

// DisableUsage - Initialize won't print usage text on failure or help.
func (a *Args) DisableUsage() *Args {
	a.usageEnabled = false
	return a
}

// DisableExit - Initialize won't exit the process on failure or help; it
// returns the error (or ErrorHelpCalled) instead.
func (a *Args) DisableExit() *Args {
	a.exitEnabled = false
	return a
}

// SetDescriptionColumn - column where flag descriptions start in the usage
// text. Default 30.
func (a *Args) SetDescriptionColumn(column int) *Args {
	a.descColumn = column
	return a
}

// SetDescriptionWidth - width at which flag descriptions word wrap.
// Default 50.
func (a *Args) SetDescriptionWidth(width int) *Args {
	a.descWidth = width
	return a
}

// SetPreamble - replace the generated synopsis line.
func (a *Args) SetPreamble(preamble string) *Args {
	a.preamble = preamble
	a.customPreamble = true
	return a
}

// SetEpilogue - text appended after the flag descriptions.
func (a *Args) SetEpilogue(epilogue string) *Args {
	a.epilogue = epilogue
	return a
}

// SetFlagDescription - replace the generated flag description block.
func (a *Args) SetFlagDescription(flagDescription string) *Args {
	a.flagDescription = flagDescription
	a.customFlagDescription = true
	return a
}

// Preamble - the current synopsis line.
func (a *Args) Preamble() string {
	return a.preamble
}

// Epilogue - the current epilogue.
func (a *Args) Epilogue() string {
	return a.epilogue
}

// FlagDescription - the current flag description block.
func (a *Args) FlagDescription() string {
	return a.flagDescription
}
