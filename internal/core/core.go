// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package core

import "context"

// Library creates machines.
type Library interface {
	CreateMachine(spec MachineSpec) (Machine, error)
}

// Distributor is the interrupt distributor of a machine.
type Distributor interface {
	// AllocIRQ returns the next free interrupt line. Lines are issued in
	// increasing order and never reused.
	AllocIRQ() (IRQ, error)
}

// Bus is the peripheral bus controller of a machine.
type Bus interface {
	Window() Window
}

// InputDevice is a pointer or keyboard device.
type InputDevice interface {
	Kind() InputKind
	IRQ() IRQ
}

// Machine is a single virtual machine instance.
//
// Attach methods must be called in dependency order: distributor before any
// device using interrupt lines, bus before storage.
type Machine interface {
	// Boot artifacts. Empty paths are ignored.
	LoadBootrom(path string) error
	LoadKernel(path string) error
	LoadDTB(path string) error

	AttachCoreTimer(win Window, cores uint64) error
	AttachDistributor(win Window, cores uint64) (Distributor, error)
	AttachBus(win Window, dist Distributor, irqs []IRQ) (Bus, error)
	AttachSerial(win Window, dist Distributor, irq IRQ) error
	AttachSyscon(win Window) error
	AttachStorage(bus Bus, image string, writable bool) error
	AttachInput(win Window, dist Distributor, irq IRQ, kind InputKind) (InputDevice, error)
	AttachFramebuffer(win Window, opts FramebufferOptions) error
	AttachNetwork(win Window, dist Distributor, irq IRQ, opts NetworkOptions) error
	AttachRTC(win Window, dist Distributor, irq IRQ) error

	// DumpDTB writes the generated device tree blob with the given boot
	// command line to path.
	DumpDTB(ctx context.Context, path, cmdline string) error

	// Start powers on the machine with the given boot command line.
	Start(ctx context.Context, cmdline string) error

	// Run blocks until the guest shuts down.
	Run() error

	// Free releases all resources of the machine.
	Free() error
}
