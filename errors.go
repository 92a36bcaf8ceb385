// This file is part of go-sargs.
//
// Copyright (C) 2017-2026  The go-sargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sargs

import (
	"errors"

	"github.com/sargs/go-sargs/internal/parser"
	"github.com/sargs/go-sargs/text"
)

// ErrorHelpCalled - Indicates the help flag was given and has been handled.
// Returned by Initialize when exiting is disabled.
var ErrorHelpCalled = errors.New(text.ErrorHelpCalled)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Parse wraps it.
var ErrorParsing = parser.ErrorParsing

// ErrorMissingValue - A value flag was supplied without a value.
var ErrorMissingValue = parser.ErrorMissingValue

// ErrorMissingRequiredFlag - A required flag was not supplied.
var ErrorMissingRequiredFlag = parser.ErrorMissingRequiredFlag

// ErrorWrongNonFlagCount - The non-flag arguments don't match the required count.
var ErrorWrongNonFlagCount = parser.ErrorWrongNonFlagCount

// ErrorNotSpecified - A Lookup accessor was queried for a flag that was not
// supplied and has no fallback. Distinct from ErrorConversion.
var ErrorNotSpecified = errors.New("")

// ErrorConversion - A Lookup accessor couldn't convert the stored value to
// the requested type, or the value exceeds the requested bit width.
var ErrorConversion = errors.New("")

// ErrorEmptyQuery - An accessor was queried with an empty flag name.
var ErrorEmptyQuery = errors.New("")
