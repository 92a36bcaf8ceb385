// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sargs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := bytes.NewBufferString("")
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
		Logger.SetOutput(io.Discard)
	}
}

func TestParseValueByBothNames(t *testing.T) {
	logTestOutput := setupTestLogging(t)
	defer logTestOutput()

	args := New()
	args.RequiredFlagValue("--foo", "-f", "Foo flag", "")
	err := args.Parse("prog", []string{"--foo=hello"})
	checkError(t, err, nil)
	if args.GetString("--foo") != "hello" {
		t.Errorf("wrong value by name: got %q, want \"hello\"", args.GetString("--foo"))
	}
	if args.GetString("-f") != "hello" {
		t.Errorf("wrong value by alias: got %q, want \"hello\"", args.GetString("-f"))
	}
	if args.Binary() != "prog" {
		t.Errorf("wrong binary: got %q", args.Binary())
	}
}

func TestParseMissingRequired(t *testing.T) {
	args := New()
	args.RequiredFlagValue("--foo", "-f", "Foo flag", "")
	err := args.Parse("prog", []string{})
	checkError(t, err, ErrorMissingRequiredFlag)
	checkError(t, err, ErrorParsing)
	if err == nil || !strings.Contains(err.Error(), "--foo") {
		t.Errorf("error doesn't name the missing flag: %v", err)
	}
}

func TestParseValuelessFlag(t *testing.T) {
	args := New()
	args.OptionalFlag("--bar", "", "Bar flag")
	err := args.Parse("prog", []string{"--bar"})
	checkError(t, err, nil)
	if !args.Has("--bar") {
		t.Errorf("flag not reported as present")
	}
	v, err := args.LookupString("--bar")
	checkError(t, err, nil)
	if v != "" {
		t.Errorf("valueless flag should store an empty string, got %q", v)
	}
}

func TestParseNonFlagsAfterDelimiter(t *testing.T) {
	args := New()
	args.RequiredFlagValue("--foo", "", "Foo flag", "")
	args.RequireNonFlags(2)
	err := args.Parse("prog", []string{"--foo", "x", "--", "a", "b"})
	checkError(t, err, nil)
	nonFlags := args.NonFlags()
	if len(nonFlags) != 2 || nonFlags[0] != "a" || nonFlags[1] != "b" {
		t.Errorf("wrong non-flags: got %v, want [a b]", nonFlags)
	}
	if args.NonFlag(0) != "a" || args.NonFlag(1) != "b" {
		t.Errorf("wrong indexed non-flags: got %q, %q", args.NonFlag(0), args.NonFlag(1))
	}
	if args.NonFlag(2) != "" || args.NonFlag(-1) != "" {
		t.Errorf("out of range access should return an empty string")
	}
}

func TestParseRejectsStrayArguments(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--foo", "", "Foo flag", "")
	err := args.Parse("prog", []string{"stray"})
	checkError(t, err, ErrorWrongNonFlagCount)
	if err == nil || !strings.Contains(err.Error(), "unknown arguments") {
		t.Errorf("wrong error message: %v", err)
	}
}

func TestFallbackValue(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "10")
	err := args.Parse("prog", []string{})
	checkError(t, err, nil)
	if !args.Has("--count") {
		t.Errorf("fallback should make the flag present")
	}
	if args.GetString("--count") != "10" || args.GetString("-c") != "10" {
		t.Errorf("fallback not visible by both names: %q, %q", args.GetString("--count"), args.GetString("-c"))
	}
	if args.GetInt32("--count") != 10 {
		t.Errorf("wrong converted fallback: got %d", args.GetInt32("--count"))
	}
}

func TestFallbackDoesNotOverrideSuppliedValue(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "10")
	err := args.Parse("prog", []string{"-c", "3"})
	checkError(t, err, nil)
	if args.GetString("--count") != "3" {
		t.Errorf("supplied value lost: got %q", args.GetString("--count"))
	}
}

func TestEmptyEqualsValueFails(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "10")
	err := args.Parse("prog", []string{"--count="})
	checkError(t, err, ErrorMissingValue)
}

func TestReparse(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "")
	err := args.Parse("prog", []string{"--count", "1"})
	checkError(t, err, nil)
	if args.GetString("--count") != "1" {
		t.Errorf("wrong value: %q", args.GetString("--count"))
	}
	err = args.Parse("prog", []string{"--count", "2"})
	checkError(t, err, nil)
	if args.GetString("--count") != "2" {
		t.Errorf("re-parse kept stale value: %q", args.GetString("--count"))
	}
}

func TestAccessorsBeforeParse(t *testing.T) {
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "10")
	if args.Has("--count") {
		t.Errorf("nothing should be present before parsing")
	}
	_, err := args.LookupString("--count")
	checkError(t, err, ErrorNotSpecified)
	if args.Binary() != "" || len(args.NonFlags()) != 0 {
		t.Errorf("unexpected results before parsing")
	}
}

func TestUsageIsIdempotent(t *testing.T) {
	args := New()
	args.RequiredFlagValue("--foo", "-f", "Foo flag", "")
	args.OptionalFlag("--bar", "", "Bar flag")
	err := args.Parse("prog", []string{"--foo", "x"})
	checkError(t, err, nil)
	first := args.Usage()
	second := args.Usage()
	if first != second {
		t.Errorf("usage text changed between calls:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	err = args.Parse("prog", []string{"--foo", "x"})
	checkError(t, err, nil)
	if args.Usage() != first {
		t.Errorf("usage text changed after re-parse")
	}
}

func TestUsageContent(t *testing.T) {
	args := New()
	args.DisableHelp()
	args.RequiredFlagValue("--foo", "-f", "Foo flag", "")
	args.OptionalFlag("--bar", "", "Bar flag")
	args.RequireNonFlags(1)
	err := args.Parse("prog", []string{"--foo", "x", "y"})
	checkError(t, err, nil)

	usage := args.Usage()
	expected := "Usage: prog [--bar] --foo=value|-f=value <--> nonflag1 \n" +
		"\n  Required flags:\n" +
		"    --foo=value/-f=value      Foo flag\n" +
		"\n  Optional flags:\n" +
		"    --bar                     Bar flag\n" +
		"\n  1 non-flag arguments are required\n"
	if usage != expected {
		t.Errorf("wrong usage text:\ngot:\n%s\nwant:\n%s", usage, expected)
	}
}

func TestUsageDegenerateLayout(t *testing.T) {
	args := New().DisableHelp()
	args.OptionalFlag("--bar", "", "Bar flag")
	args.SetDescriptionWidth(0)
	args.SetDescriptionColumn(-1)
	err := args.Parse("prog", []string{})
	checkError(t, err, nil)
	if !strings.Contains(args.Usage(), "--bar") {
		t.Errorf("usage text not rendered:\n%s", args.Usage())
	}
}

func TestUsageOverrides(t *testing.T) {
	args := New()
	args.OptionalFlag("--bar", "", "Bar flag")
	args.SetPreamble("my preamble\n")
	args.SetFlagDescription("my flags\n")
	args.SetEpilogue("my epilogue\n")
	err := args.Parse("prog", []string{})
	checkError(t, err, nil)
	if args.Usage() != "my preamble\nmy flags\nmy epilogue\n" {
		t.Errorf("overrides not honored:\n%s", args.Usage())
	}
	if args.Preamble() != "my preamble\n" || args.FlagDescription() != "my flags\n" || args.Epilogue() != "my epilogue\n" {
		t.Errorf("getters don't return the overrides")
	}
}

func TestInitializeHelp(t *testing.T) {
	buf := bytes.NewBufferString("")
	Writer = buf
	exitCode := -1
	exitFn = func(code int) { exitCode = code }
	defer func() {
		Writer = os.Stderr
		exitFn = os.Exit
	}()

	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "")
	_ = args.Initialize([]string{"prog", "--help"})

	if exitCode != 0 {
		t.Errorf("wrong exit code: got %d, want 0", exitCode)
	}
	if !strings.Contains(buf.String(), "Usage: prog") {
		t.Errorf("usage not printed:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "--help") {
		t.Errorf("help flag not listed:\n%s", buf.String())
	}
}

func TestInitializeError(t *testing.T) {
	buf := bytes.NewBufferString("")
	Writer = buf
	exitCode := -1
	exitFn = func(code int) { exitCode = code }
	defer func() {
		Writer = os.Stderr
		exitFn = os.Exit
	}()

	args := New()
	args.RequiredFlagValue("--foo", "-f", "Foo flag", "")
	err := args.Initialize([]string{"prog"})

	if exitCode != 1 {
		t.Errorf("wrong exit code: got %d, want 1", exitCode)
	}
	checkError(t, err, ErrorMissingRequiredFlag)
	if !strings.Contains(buf.String(), "Error: must specify '--foo'") {
		t.Errorf("error line not printed:\n%s", buf.String())
	}
}

func TestInitializeDisableExit(t *testing.T) {
	buf := bytes.NewBufferString("")
	Writer = buf
	defer func() { Writer = os.Stderr }()

	t.Run("help returns ErrorHelpCalled", func(t *testing.T) {
		args := New().DisableExit()
		args.OptionalFlag("--bar", "", "Bar flag")
		err := args.Initialize([]string{"prog", "-h"})
		checkError(t, err, ErrorHelpCalled)
		if err == nil || err.Error() != "help called" {
			t.Errorf("wrong error message: %v", err)
		}
	})
	t.Run("parse error is returned", func(t *testing.T) {
		args := New().DisableExit()
		args.RequiredFlag("--foo", "", "Foo flag")
		err := args.Initialize([]string{"prog"})
		checkError(t, err, ErrorMissingRequiredFlag)
	})
	t.Run("success returns nil", func(t *testing.T) {
		args := New().DisableExit()
		args.OptionalFlag("--bar", "", "Bar flag")
		err := args.Initialize([]string{"prog", "--bar"})
		checkError(t, err, nil)
	})
}

func TestInitializeDisableUsage(t *testing.T) {
	buf := bytes.NewBufferString("")
	Writer = buf
	defer func() { Writer = os.Stderr }()

	args := New().DisableExit().DisableUsage()
	args.RequiredFlag("--foo", "", "Foo flag")
	err := args.Initialize([]string{"prog"})
	checkError(t, err, ErrorMissingRequiredFlag)
	if buf.String() != "" {
		t.Errorf("usage printed with printing disabled:\n%s", buf.String())
	}
}

func TestDisableHelp(t *testing.T) {
	args := New().DisableHelp().DisableExit().DisableUsage()
	err := args.Initialize([]string{"prog", "--help"})
	// Without the auto registered flag '--help' is just an unknown argument.
	checkError(t, err, ErrorWrongNonFlagCount)
}

func TestHelpFlagCountsTowardsImpliedDelimiter(t *testing.T) {
	// The auto registered help pair is part of the declared flag total used
	// by the implied delimiter heuristic.
	args := New()
	args.OptionalFlagValue("--count", "-c", "Count", "")
	args.RequireNonFlags(1)
	err := args.Parse("prog", []string{"--count", "1", "x"})
	checkError(t, err, nil)
	if args.NonFlag(0) != "x" {
		t.Errorf("wrong non-flag: %q", args.NonFlag(0))
	}
}

func TestDeclarationPanics(t *testing.T) {
	expectPanic := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		fn()
	}
	t.Run("duplicate flag", func(t *testing.T) {
		args := New()
		args.OptionalFlag("--bar", "", "Bar flag")
		expectPanic(t, func() { args.RequiredFlagValue("--bar", "-b", "again", "") })
	})
	t.Run("no names", func(t *testing.T) {
		args := New()
		expectPanic(t, func() { args.OptionalFlag("", "", "nameless") })
	})
}
