// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing messages used across the library.
// Having them here allows for easy global modification.
package text

// ErrorMissingValue holds the text for the error when a value flag is the
// last token of the command line and has nothing left to consume.
// It has a string placeholder '%s' for the name of the flag.
var ErrorMissingValue = "must set value for '%s'"

// ErrorValueRequired holds the text for the error when a value flag was
// supplied with an empty value, for example '--flag='.
// It has a string placeholder '%s' for the name of the flag.
var ErrorValueRequired = "must specify value for '%s'"

// ErrorMissingRequiredFlag holds the text for the missing required flag error.
// It has a string placeholder '%s' for the name of the flag.
var ErrorMissingRequiredFlag = "must specify '%s'"

// ErrorUnknownArguments holds the text for the error when non-flag arguments
// are present but none are expected.
var ErrorUnknownArguments = "unknown arguments"

// ErrorWrongNonFlagCount holds the text for the error when the number of
// non-flag arguments doesn't match the required count.
// It has an int placeholder '%d' for the required count.
var ErrorWrongNonFlagCount = "unknown arguments or must specify %d non-flag arguments"

// ErrorEmptyQuery holds the text for the error when a flag value is queried
// with an empty name.
var ErrorEmptyQuery = "flag query is empty"

// ErrorNotSpecified holds the text for the error when a queried flag was not
// supplied on the command line and has no fallback.
// It has a string placeholder '%s' for the name of the flag.
var ErrorNotSpecified = "'%s' was not specified"

// ErrorConvertToInt holds the text for non numeric signed integer conversion
// failures. Placeholders: flag name, value, bit width.
var ErrorConvertToInt = "can't convert '%s' value '%s' to int%d"

// ErrorConvertToUint holds the text for non numeric unsigned integer
// conversion failures. Placeholders: flag name, value, bit width.
var ErrorConvertToUint = "can't convert '%s' value '%s' to uint%d"

// ErrorConvertToFloat holds the text for non numeric float conversion
// failures. Placeholders: flag name, value, bit width.
var ErrorConvertToFloat = "can't convert '%s' value '%s' to float%d"

// ErrorIntOutOfRange holds the text for signed integer conversions that
// exceed the requested bit width. Placeholders: flag name, value, bit width.
var ErrorIntOutOfRange = "'%s' value '%s' is out of range for int%d"

// ErrorUintOutOfRange holds the text for unsigned integer conversions that
// exceed the requested bit width. Placeholders: flag name, value, bit width.
var ErrorUintOutOfRange = "'%s' value '%s' is out of range for uint%d"

// ErrorFloatOutOfRange holds the text for float conversions that exceed the
// requested bit width. Placeholders: flag name, value, bit width.
var ErrorFloatOutOfRange = "'%s' value '%s' is out of range for float%d"

// ErrorHelpCalled holds the text for the error returned when the help flag
// was given and exiting is disabled.
var ErrorHelpCalled = "help called"

// HelpUsagePrefix - Start of the synopsis line.
var HelpUsagePrefix = "Usage:"

// HelpRequiredFlagsHeader - Header for the required flags section.
var HelpRequiredFlagsHeader = "Required flags"

// HelpOptionalFlagsHeader - Header for the optional flags section.
var HelpOptionalFlagsHeader = "Optional flags"

// HelpNonFlagsRequired - Trailer line when non-flag arguments are expected.
// It has an int placeholder '%d' for the required count.
var HelpNonFlagsRequired = "%d non-flag arguments are required"

// HelpFlagDescription - Description of the auto registered help flag.
var HelpFlagDescription = "Print usage and flag information"
