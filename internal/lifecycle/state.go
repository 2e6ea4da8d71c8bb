// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package lifecycle

import "fmt"

// State of a machine managed by a [Controller].
type State int

// States in the order they are passed.
const (
	Uninitialized State = iota
	Created
	Configured
	Running
	Stopped
	Freed

	// DumpRequested is the side state entered from and returning to
	// Configured while the device tree is dumped.
	DumpRequested
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Created:       "created",
	Configured:    "configured",
	Running:       "running",
	Stopped:       "stopped",
	Freed:         "freed",
	DumpRequested: "dump requested",
}

// String implements [fmt.Stringer].
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// next returns the only state that may follow s.
func (s State) next() (State, bool) {
	if s < Uninitialized || s >= Freed {
		return s, false
	}

	return s + 1, true
}
