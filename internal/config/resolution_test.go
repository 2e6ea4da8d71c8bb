// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/rvrun/internal/config"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input       string
		expected    config.Resolution
		expectedErr error
	}{
		{
			input:    "1920x1080",
			expected: config.Resolution{Width: 1920, Height: 1080},
		},
		{
			input:    "1x1",
			expected: config.Resolution{Width: 1, Height: 1},
		},
		{
			input:       "bogus",
			expectedErr: config.ErrResolutionSeparator,
		},
		{
			input:       "1920",
			expectedErr: config.ErrResolutionSeparator,
		},
		{
			input:       "x1080",
			expectedErr: config.ErrInvalidResolution,
		},
		{
			input:       "1920x",
			expectedErr: config.ErrInvalidResolution,
		},
		{
			input:       "0x1080",
			expectedErr: config.ErrInvalidResolution,
		},
		{
			input:       "1920x1080x32",
			expectedErr: config.ErrInvalidResolution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := config.ParseResolution(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "640x480", config.Resolution{Width: 640, Height: 480}.String())
}

func TestArgumentError(t *testing.T) {
	err := &config.ArgumentError{
		Option: "res",
		Value:  "bogus",
		Err:    config.ErrResolutionSeparator,
	}

	assert.Equal(t, `argument -res "bogus": resolution must be WIDTHxHEIGHT`, err.Error())
	assert.ErrorIs(t, err, &config.ArgumentError{})
	assert.ErrorIs(t, err, config.ErrResolutionSeparator)
}
