// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package lifecycle

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned if a state is skipped or left backwards.
var ErrInvalidTransition = errors.New("invalid state transition")

// MachineCreationError is returned if the machine can not be created.
type MachineCreationError struct {
	Err error
}

// Error implements the [error] interface.
func (e *MachineCreationError) Error() string {
	return "create machine: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*MachineCreationError) Is(other error) bool {
	_, ok := other.(*MachineCreationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *MachineCreationError) Unwrap() error {
	return e.Err
}

// BootArtifactError is returned if a bootrom, kernel or device tree can not
// be loaded.
type BootArtifactError struct {
	Artifact string
	Path     string
	Err      error
}

// Error implements the [error] interface.
func (e *BootArtifactError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Artifact, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*BootArtifactError) Is(other error) bool {
	_, ok := other.(*BootArtifactError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *BootArtifactError) Unwrap() error {
	return e.Err
}
