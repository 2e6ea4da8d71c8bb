// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import "fmt"

// ArgsSourceError is returned if arguments can not be read from one of the
// additional argument sources.
type ArgsSourceError struct {
	// Source names the failing source, like the local config file path.
	Source string
	Err    error
}

// Error implements the [error] interface.
func (e *ArgsSourceError) Error() string {
	return fmt.Sprintf("arguments from %s: %v", e.Source, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ArgsSourceError) Is(other error) bool {
	_, ok := other.(*ArgsSourceError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ArgsSourceError) Unwrap() error {
	return e.Err
}
