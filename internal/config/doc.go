// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config turns the rvrun command line into a [VMConfig].
//
// The grammar is deliberately small: "-name value", "-name=value", "--name"
// variants of both, and a single positional argument for the bootrom. Options
// are looked up in a fixed table that declares whether they take a value, so
// switches never swallow the following argument.
package config
