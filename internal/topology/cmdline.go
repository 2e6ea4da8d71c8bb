// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology

import (
	"slices"
	"strings"
)

// Cmdline is the boot command line buffer.
//
// Tokens can be appended until it is finalized. Finalize may succeed only
// once.
type Cmdline struct {
	tokens    []string
	finalized bool
}

// Append adds tokens at the end.
func (c *Cmdline) Append(tokens ...string) error {
	if c.finalized {
		return ErrCmdlineFinalized
	}

	c.tokens = append(c.tokens, tokens...)

	return nil
}

// Finalize seals the buffer and returns the space separated tokens.
func (c *Cmdline) Finalize() (string, error) {
	if c.finalized {
		return "", ErrCmdlineFinalized
	}

	c.finalized = true

	return strings.Join(c.tokens, " "), nil
}

// Finalized reports whether [Cmdline.Finalize] has been called.
func (c *Cmdline) Finalized() bool {
	return c.finalized
}

// Tokens returns a copy of the tokens appended so far.
func (c *Cmdline) Tokens() []string {
	return slices.Clone(c.tokens)
}
