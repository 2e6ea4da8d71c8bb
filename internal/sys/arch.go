// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Arch is a RISC-V guest architecture.
type Arch string

// Supported guest architectures.
const (
	RISCV32 Arch = "riscv32"
	RISCV64 Arch = "riscv64"
)

// Native is the architecture of the host. Using the same architecture for the
// guest allows using KVM, if available. Use [Arch.KVMAvailable] to check.
const Native = Arch(runtime.GOARCH)

const kvmDevice = "/dev/kvm"

// GuestArch returns the guest architecture for the core width.
func GuestArch(rv64 bool) Arch {
	if rv64 {
		return RISCV64
	}

	return RISCV32
}

func (a Arch) String() string {
	return string(a)
}

// IsNative reports whether the architecture matches the host.
func (a Arch) IsNative() bool {
	return a == Native
}

// KVMAvailable checks if KVM support is available for the architecture.
func (a Arch) KVMAvailable() bool {
	if !a.IsNative() {
		return false
	}

	return unix.Access(kvmDevice, unix.R_OK|unix.W_OK) == nil
}

// QemuExecutable returns the name of the QEMU system emulator for the
// architecture.
func (a Arch) QemuExecutable() string {
	return "qemu-system-" + string(a)
}
