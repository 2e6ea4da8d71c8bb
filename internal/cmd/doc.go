// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for rvrun. It merges the
// argument sources, sets up logging and reports failures as diagnostics.
package cmd
