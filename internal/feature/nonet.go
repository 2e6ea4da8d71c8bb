// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build rvrun_nonet

package feature

// Network enables the network adapter.
const Network = false
