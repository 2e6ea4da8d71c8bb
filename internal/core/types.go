// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"fmt"
	"math/bits"
)

// Window is a physical address window of a device or memory region.
type Window struct {
	Base uint64
	Size uint64
}

// End returns the first address after the window.
func (w Window) End() uint64 {
	return w.Base + w.Size
}

// Wraps reports whether the window extends beyond the 64 bit address space.
func (w Window) Wraps() bool {
	_, carry := bits.Add64(w.Base, w.Size, 0)
	return carry != 0
}

// Overlaps reports whether both windows share at least one address.
func (w Window) Overlaps(other Window) bool {
	if w.Size == 0 || other.Size == 0 {
		return false
	}

	return w.Base < other.End() && other.Base < w.End()
}

// String implements [fmt.Stringer].
func (w Window) String() string {
	return fmt.Sprintf("[%#08x-%#08x)", w.Base, w.End())
}

// IRQ is an interrupt line allocated from a [Distributor].
type IRQ uint32

// InputKind is the kind of an input device.
type InputKind int

// Input device kinds.
const (
	InputPointer InputKind = iota
	InputKeyboard
)

// String implements [fmt.Stringer].
func (k InputKind) String() string {
	switch k {
	case InputPointer:
		return "pointer"
	case InputKeyboard:
		return "keyboard"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// MachineSpec describes the machine to create.
type MachineSpec struct {
	MemBase uint64
	MemSize uint64
	Cores   uint64
	RV64    bool
}

// NetworkOptions configures the network adapter.
type NetworkOptions struct {
	// Host TAP interface name. User-mode networking is used if empty.
	TapInterface string
}

// FramebufferOptions configures the framebuffer.
type FramebufferOptions struct {
	Width  uint32
	Height uint32

	// Input devices the framebuffer routes events for.
	Pointer  InputDevice
	Keyboard InputDevice
}
