// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !rvrun_norv64

package feature

// RV64 enables 64-bit machines.
const RV64 = true
