// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package topology assembles the devices of a machine.
//
// A [Descriptor] lists all enabled components with their address window and
// number of interrupt lines in build order. It is validated before anything
// is attached. The [Builder] then walks it against a [core.Machine] and lends
// the distributor, bus and input handles to the components that need them.
package topology
