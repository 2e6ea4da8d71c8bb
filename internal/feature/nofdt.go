// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build rvrun_nofdt

package feature

// FDTDump enables dumping the generated device tree.
const FDTDump = false
