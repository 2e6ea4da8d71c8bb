// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Size units, selected by the last character of a size string.
const (
	KiB uint64 = 1 << 10
	MiB uint64 = 1 << 20
	GiB uint64 = 1 << 30
)

// ParseMemSize parses a memory size like "512M" into bytes.
//
// The last character selects the multiplier: K, M and G (case-insensitive)
// for KiB, MiB and GiB. If the last character is a digit, the value is taken
// as bytes.
func ParseMemSize(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSize)
	}

	magnitude, unit := s, uint64(1)

	switch s[len(s)-1] {
	case 'K', 'k':
		unit = KiB
	case 'M', 'm':
		unit = MiB
	case 'G', 'g':
		unit = GiB
	}

	if unit != 1 {
		magnitude = s[:len(s)-1]
	}

	value, err := strconv.ParseUint(magnitude, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}

	hi, size := bits.Mul64(value, unit)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %s overflows", ErrInvalidSize, s)
	}

	return size, nil
}

// ParseCount parses a plain decimal number and checks it is within the given
// bounds. A bound of 0 is not checked.
func ParseCount(s string, minimum, maximum uint64) (uint64, error) {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}

	if minimum > 0 && value < minimum {
		return 0, fmt.Errorf("%d < %d: %w", value, minimum, ErrValueOutOfRange)
	}

	if maximum > 0 && value > maximum {
		return 0, fmt.Errorf("%d > %d: %w", value, maximum, ErrValueOutOfRange)
	}

	return value, nil
}
