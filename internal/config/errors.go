// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned if help or version information was requested and
	// printed. No machine should be created in this case.
	ErrHelp = errors.New("help requested")

	// ErrInvalidSize is returned if a memory size can not be parsed.
	ErrInvalidSize = errors.New("invalid size")

	// ErrResolutionSeparator is returned if a resolution lacks the "x"
	// between width and height.
	ErrResolutionSeparator = errors.New("resolution must be WIDTHxHEIGHT")

	// ErrInvalidResolution is returned if width or height of a resolution
	// are not positive integers.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrNoBootrom is returned if neither the bootrom option nor a positional
	// argument is given. The short usage line has been printed.
	ErrNoBootrom = errors.New("no bootrom given")

	// ErrValueOutOfRange is returned if a number is outside of its allowed
	// range.
	ErrValueOutOfRange = errors.New("value is outside of range")
)

// ArgumentError is returned for malformed arguments that abort parsing.
type ArgumentError struct {
	Option string
	Value  string
	Err    error
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument -%s %q: %v", e.Option, e.Value, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}
