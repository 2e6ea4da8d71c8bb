// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology

import "github.com/aibor/rvrun/internal/core"

// Fixed addresses of the machine memory map.
const (
	SysconBase      = 0x00100000
	RTCBase         = 0x00101000
	CoreTimerBase   = 0x02000000
	DistributorBase = 0x0c000000
	SerialBase      = 0x10000000
	PointerBase     = 0x20000000
	KeyboardBase    = 0x20001000
	NetworkBase     = 0x21000000
	FramebufferBase = 0x28000000
	BusBase         = 0x30000000
	RAMBase         = 0x80000000
)

// Bytes per framebuffer pixel.
const FramebufferBPP = 4

// Layout holds the address windows of all components.
//
// The framebuffer and RAM windows are sized by the machine configuration, so
// only their bases are part of the layout.
type Layout struct {
	Syscon      core.Window
	RTC         core.Window
	CoreTimer   core.Window
	Distributor core.Window
	Serial      core.Window
	Pointer     core.Window
	Keyboard    core.Window
	Network     core.Window
	Bus         core.Window

	FramebufferBase uint64
	RAMBase         uint64
}

// DefaultLayout returns the memory map of the QEMU virt machine.
func DefaultLayout() Layout {
	return Layout{
		Syscon:          core.Window{Base: SysconBase, Size: 0x1000},
		RTC:             core.Window{Base: RTCBase, Size: 0x1000},
		CoreTimer:       core.Window{Base: CoreTimerBase, Size: 0x10000},
		Distributor:     core.Window{Base: DistributorBase, Size: 0x4000000},
		Serial:          core.Window{Base: SerialBase, Size: 0x100},
		Pointer:         core.Window{Base: PointerBase, Size: 0x1000},
		Keyboard:        core.Window{Base: KeyboardBase, Size: 0x1000},
		Network:         core.Window{Base: NetworkBase, Size: 0x1000},
		Bus:             core.Window{Base: BusBase, Size: 0x10000000},
		FramebufferBase: FramebufferBase,
		RAMBase:         RAMBase,
	}
}
