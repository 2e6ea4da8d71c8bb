// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a framebuffer resolution in pixels.
type Resolution struct {
	Width  uint32
	Height uint32
}

// String implements [fmt.Stringer].
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses a resolution in the format "WIDTHxHEIGHT".
//
// The string is split at the first "x". If there is none,
// [ErrResolutionSeparator] is returned.
func ParseResolution(s string) (Resolution, error) {
	width, height, found := strings.Cut(s, "x")
	if !found {
		return Resolution{}, ErrResolutionSeparator
	}

	w, err := strconv.ParseUint(width, 10, 32)
	if err != nil || w == 0 {
		return Resolution{}, fmt.Errorf("%w: width %q", ErrInvalidResolution, width)
	}

	h, err := strconv.ParseUint(height, 10, 32)
	if err != nil || h == 0 {
		return Resolution{}, fmt.Errorf("%w: height %q", ErrInvalidResolution, height)
	}

	return Resolution{Width: uint32(w), Height: uint32(h)}, nil
}
