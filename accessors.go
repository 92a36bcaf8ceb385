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
	"fmt"
	"strconv"

	"github.com/sargs/go-sargs/text"
)

// Accessors come in pairs: the Lookup form reports failures as errors that
// wrap ErrorEmptyQuery, ErrorNotSpecified or ErrorConversion, and the Get
// form swallows them and returns the type's zero value. Validation mirrors
// values across a flag's two names, so any accessor works with either name.
//
// Numeric conversions accept base prefixes the way strconv's base 0 does:
// '0x' for hex, '0' or '0o' for octal, '0b' for binary.

// Has - tells if the flag was given on the command line or filled in by a
// fallback, by any of its names.
func (a *Args) Has(flag string) bool {
	if a.result == nil {
		return false
	}
	if _, ok := a.result.Values[flag]; ok {
		return true
	}
	if alt := a.registry.Alternative(flag); alt != "" {
		_, ok := a.result.Values[alt]
		return ok
	}
	return false
}

// Binary - the program name captured from the parsed argument vector.
func (a *Args) Binary() string {
	if a.result == nil {
		return ""
	}
	return a.result.Binary
}

// NonFlags - the non-flag arguments in command line order.
func (a *Args) NonFlags() []string {
	if a.result == nil {
		return []string{}
	}
	return a.result.NonFlags
}

// NonFlag - the non-flag argument at the given index, or an empty string
// when the index is out of range.
func (a *Args) NonFlag(index int) string {
	if a.result == nil || index < 0 || index >= len(a.result.NonFlags) {
		return ""
	}
	return a.result.NonFlags[index]
}

// LookupString - the raw value of the given flag.
func (a *Args) LookupString(flag string) (string, error) {
	return a.lookup(flag)
}

// GetString - like LookupString but returns an empty string on any failure.
func (a *Args) GetString(flag string) string {
	v, _ := a.lookup(flag)
	return v
}

// LookupFloat64 - the flag's value converted to float64.
func (a *Args) LookupFloat64(flag string) (float64, error) {
	return a.lookupFloat(flag, 64)
}

// GetFloat64 - like LookupFloat64 but returns 0 on any failure.
func (a *Args) GetFloat64(flag string) float64 {
	f, _ := a.lookupFloat(flag, 64)
	return f
}

// LookupFloat32 - the flag's value converted to float32.
func (a *Args) LookupFloat32(flag string) (float32, error) {
	f, err := a.lookupFloat(flag, 32)
	return float32(f), err
}

// GetFloat32 - like LookupFloat32 but returns 0 on any failure.
func (a *Args) GetFloat32(flag string) float32 {
	f, _ := a.lookupFloat(flag, 32)
	return float32(f)
}

// LookupInt64 - the flag's value converted to int64.
func (a *Args) LookupInt64(flag string) (int64, error) {
	return a.lookupInt(flag, 64)
}

// GetInt64 - like LookupInt64 but returns 0 on any failure.
func (a *Args) GetInt64(flag string) int64 {
	i, _ := a.lookupInt(flag, 64)
	return i
}

// LookupInt32 - the flag's value converted to int32.
func (a *Args) LookupInt32(flag string) (int32, error) {
	i, err := a.lookupInt(flag, 32)
	return int32(i), err
}

// GetInt32 - like LookupInt32 but returns 0 on any failure.
func (a *Args) GetInt32(flag string) int32 {
	i, _ := a.lookupInt(flag, 32)
	return int32(i)
}

// LookupInt16 - the flag's value converted to int16.
func (a *Args) LookupInt16(flag string) (int16, error) {
	i, err := a.lookupInt(flag, 16)
	return int16(i), err
}

// GetInt16 - like LookupInt16 but returns 0 on any failure.
func (a *Args) GetInt16(flag string) int16 {
	i, _ := a.lookupInt(flag, 16)
	return int16(i)
}

// LookupInt8 - the flag's value converted to int8.
func (a *Args) LookupInt8(flag string) (int8, error) {
	i, err := a.lookupInt(flag, 8)
	return int8(i), err
}

// GetInt8 - like LookupInt8 but returns 0 on any failure.
func (a *Args) GetInt8(flag string) int8 {
	i, _ := a.lookupInt(flag, 8)
	return int8(i)
}

// LookupUint64 - the flag's value converted to uint64.
func (a *Args) LookupUint64(flag string) (uint64, error) {
	return a.lookupUint(flag, 64)
}

// GetUint64 - like LookupUint64 but returns 0 on any failure.
func (a *Args) GetUint64(flag string) uint64 {
	u, _ := a.lookupUint(flag, 64)
	return u
}

// LookupUint32 - the flag's value converted to uint32.
func (a *Args) LookupUint32(flag string) (uint32, error) {
	u, err := a.lookupUint(flag, 32)
	return uint32(u), err
}

// GetUint32 - like LookupUint32 but returns 0 on any failure.
func (a *Args) GetUint32(flag string) uint32 {
	u, _ := a.lookupUint(flag, 32)
	return uint32(u)
}

// LookupUint16 - the flag's value converted to uint16.
func (a *Args) LookupUint16(flag string) (uint16, error) {
	u, err := a.lookupUint(flag, 16)
	return uint16(u), err
}

// GetUint16 - like LookupUint16 but returns 0 on any failure.
func (a *Args) GetUint16(flag string) uint16 {
	u, _ := a.lookupUint(flag, 16)
	return uint16(u)
}

// LookupUint8 - the flag's value converted to uint8.
func (a *Args) LookupUint8(flag string) (uint8, error) {
	u, err := a.lookupUint(flag, 8)
	return uint8(u), err
}

// GetUint8 - like LookupUint8 but returns 0 on any failure.
func (a *Args) GetUint8(flag string) uint8 {
	u, _ := a.lookupUint(flag, 8)
	return uint8(u)
}

// lookup - raw string lookup shared by every accessor.
func (a *Args) lookup(flag string) (string, error) {
	if flag == "" {
		return "", fmt.Errorf(text.ErrorEmptyQuery+"%w", ErrorEmptyQuery)
	}
	if a.result != nil {
		if v, ok := a.result.Values[flag]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf(text.ErrorNotSpecified+"%w", flag, ErrorNotSpecified)
}

func (a *Args) lookupInt(flag string, bits int) (int64, error) {
	v, err := a.lookup(flag)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(v, 0, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf(text.ErrorIntOutOfRange+"%w", flag, v, bits, ErrorConversion)
		}
		return 0, fmt.Errorf(text.ErrorConvertToInt+"%w", flag, v, bits, ErrorConversion)
	}
	return i, nil
}

func (a *Args) lookupUint(flag string, bits int) (uint64, error) {
	v, err := a.lookup(flag)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(v, 0, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf(text.ErrorUintOutOfRange+"%w", flag, v, bits, ErrorConversion)
		}
		return 0, fmt.Errorf(text.ErrorConvertToUint+"%w", flag, v, bits, ErrorConversion)
	}
	return u, nil
}

func (a *Args) lookupFloat(flag string, bits int) (float64, error) {
	v, err := a.lookup(flag)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf(text.ErrorFloatOutOfRange+"%w", flag, v, bits, ErrorConversion)
		}
		return 0, fmt.Errorf(text.ErrorConvertToFloat+"%w", flag, v, bits, ErrorConversion)
	}
	return f, nil
}
