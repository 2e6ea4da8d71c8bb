// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowOverlap is returned if two components share addresses.
	ErrWindowOverlap = errors.New("address windows overlap")

	// ErrWindowOverflow is returned if a window ends beyond the address
	// space.
	ErrWindowOverflow = errors.New("address window exceeds address space")

	// ErrEmptyWindow is returned if a component has a zero sized window.
	ErrEmptyWindow = errors.New("empty address window")

	// ErrDependency is returned if a component is placed before a component
	// it depends on, or its dependency is missing.
	ErrDependency = errors.New("dependency not satisfied")

	// ErrDuplicateComponent is returned if a component kind is listed more
	// than once.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrIRQConflict is returned if an interrupt line is assigned twice.
	ErrIRQConflict = errors.New("interrupt line already assigned")

	// ErrCmdlineFinalized is returned if the boot command line is modified or
	// finalized after it has been finalized.
	ErrCmdlineFinalized = errors.New("boot command line already finalized")
)

// DeviceAttachError is returned if a component can not be attached.
type DeviceAttachError struct {
	Component string
	Err       error
}

// Error implements the [error] interface.
func (e *DeviceAttachError) Error() string {
	return fmt.Sprintf("attach %s: %v", e.Component, e.Err)
}

// Is implements the [errors.Is] interface.
func (*DeviceAttachError) Is(other error) bool {
	_, ok := other.(*DeviceAttachError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *DeviceAttachError) Unwrap() error {
	return e.Err
}
