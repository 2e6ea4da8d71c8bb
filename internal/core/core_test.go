// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aibor/rvrun/internal/core"
)

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Window
		expected bool
	}{
		{
			name: "disjoint",
			a:    core.Window{Base: 0x1000, Size: 0x1000},
			b:    core.Window{Base: 0x3000, Size: 0x1000},
		},
		{
			name: "adjacent",
			a:    core.Window{Base: 0x1000, Size: 0x1000},
			b:    core.Window{Base: 0x2000, Size: 0x1000},
		},
		{
			name:     "contained",
			a:        core.Window{Base: 0x1000, Size: 0x4000},
			b:        core.Window{Base: 0x2000, Size: 0x1000},
			expected: true,
		},
		{
			name:     "partial",
			a:        core.Window{Base: 0x1000, Size: 0x2000},
			b:        core.Window{Base: 0x2000, Size: 0x2000},
			expected: true,
		},
		{
			name: "empty",
			a:    core.Window{Base: 0x1000, Size: 0x2000},
			b:    core.Window{Base: 0x1800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_String(t *testing.T) {
	w := core.Window{Base: 0x10000000, Size: 0x100}
	assert.Equal(t, "[0x10000000-0x10000100)", w.String())
	assert.Equal(t, uint64(0x10000100), w.End())
}

func TestWindow_Wraps(t *testing.T) {
	tests := []struct {
		name     string
		window   core.Window
		expected bool
	}{
		{
			name:     "within address space",
			window:   core.Window{Base: 0x80000000, Size: 256 << 20},
			expected: false,
		},
		{
			name:     "beyond address space",
			window:   core.Window{Base: 0x80000000, Size: ^uint64(0) - 0x40000000},
			expected: true,
		},
		{
			name:     "ends at top of address space",
			window:   core.Window{Base: 1, Size: ^uint64(0)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Wraps())
		})
	}
}

func TestInputKind_String(t *testing.T) {
	assert.Equal(t, "pointer", core.InputPointer.String())
	assert.Equal(t, "keyboard", core.InputKeyboard.String())
	assert.Equal(t, "InputKind(7)", core.InputKind(7).String())
}
