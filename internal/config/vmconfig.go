// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

// Defaults for machines without explicit options.
const (
	MemoryDefault = 256 * MiB
	CoresDefault  = 1
	CoresMax      = 512

	WidthDefault  = 640
	HeightDefault = 480
)

// VMConfig describes the virtual machine requested on the command line.
//
// It is produced once by [Parse] and handed around by value afterwards.
type VMConfig struct {
	// Machine bootrom, e.g. an SBI implementation. Required.
	Bootrom string

	// Kernel image loaded as SBI payload.
	Kernel string

	// Custom device tree blob passed to the machine instead of the generated
	// one.
	DTB string

	// File the generated device tree blob is written to.
	DumpDTB string

	// Raw disk image attached via NVMe.
	Image string

	// Host TAP interface for the network adapter. User-mode networking is
	// used if empty.
	NetTap string

	// Guest memory in bytes.
	Memory uint64

	// Number of cores.
	Cores uint64

	// Framebuffer resolution.
	Resolution Resolution

	// Use 64-bit cores.
	RV64 bool

	// Do not attach framebuffer, pointer and keyboard.
	NoGUI bool
}

// DefaultVMConfig returns a [VMConfig] with the defaults set.
func DefaultVMConfig() VMConfig {
	return VMConfig{
		Memory: MemoryDefault,
		Cores:  CoresDefault,
		Resolution: Resolution{
			Width:  WidthDefault,
			Height: HeightDefault,
		},
	}
}

// Args is the complete result of parsing the command line.
type Args struct {
	VM VMConfig

	// QEMU executable. The backend chooses one based on the machine if empty.
	QemuBinary string

	// Enable debug logging.
	Verbose bool
}
