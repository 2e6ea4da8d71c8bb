// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package feature holds the compile time switches of optional machine
// components.
//
// All features are enabled by default. Each can be disabled with a build tag:
//
//	rvrun_nofb    framebuffer with pointer and keyboard input
//	rvrun_nonet   network adapter
//	rvrun_nortc   real-time clock
//	rvrun_nofdt   device tree dump
//	rvrun_norv64  64-bit machines
package feature
