// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package core defines the contract of the virtualization core rvrun drives.
//
// The core owns CPU execution, memory and device register semantics. rvrun
// only creates a machine, attaches devices in order and runs the event loop.
// Handles returned by the core are owned by the [Machine] that created them
// and are lent to later device constructors.
package core
