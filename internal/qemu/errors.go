// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrIRQExhausted is returned if the distributor has no free interrupt
	// sources left.
	ErrIRQExhausted = errors.New("no interrupt sources left")

	// ErrNotTapInterface is returned if a network interface exists but is not
	// a TAP device.
	ErrNotTapInterface = errors.New("not a tap interface")

	// ErrImageNotWritable is returned if a disk image that is supposed to be
	// writable can not be written.
	ErrImageNotWritable = errors.New("image not writable")

	// ErrAlreadyStarted is returned if a machine is started twice.
	ErrAlreadyStarted = errors.New("machine already started")

	// ErrNotStarted is returned if a machine is run before it is started.
	ErrNotStarted = errors.New("machine not started")

	// ErrAlreadyFreed is returned if a machine is used after it is freed.
	ErrAlreadyFreed = errors.New("machine already freed")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred during QEMU execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("qemu exited with %d: %v", e.ExitCode, e.Err)
	}

	return "qemu: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
