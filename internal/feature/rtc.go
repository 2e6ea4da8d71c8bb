// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !rvrun_nortc

package feature

// RTC enables the real-time clock.
const RTC = true
