// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !rvrun_nofb

package feature

// Framebuffer enables the display chain: framebuffer, pointer and keyboard.
const Framebuffer = true
