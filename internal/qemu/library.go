// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/vishvananda/netlink"

	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/sys"
)

// Maximum number of cores of the virt machine.
const maxCores = 512

// RAM base of the virt machine.
const ramBase = 0x80000000

// DefaultGracePeriod is the time QEMU gets to terminate after SIGTERM.
const DefaultGracePeriod = 5 * time.Second

// Library creates QEMU backed [Machine]s.
type Library struct {
	// QEMU executable. If empty, the qemu-system binary matching the core
	// width is used.
	Executable string

	// Standard streams of the QEMU process. The serial console is attached
	// to them. If nil, the process' own streams are used.
	Stdin  io.Reader
	Stdout io.Writer

	// Time QEMU gets to terminate once the context is cancelled.
	// [DefaultGracePeriod] is used if zero.
	GracePeriod time.Duration

	// Never use KVM, even if available.
	NoKVM bool
}

// CreateMachine implements [core.Library].
func (l *Library) CreateMachine(spec core.MachineSpec) (core.Machine, error) {
	switch {
	case spec.MemBase != ramBase:
		return nil, &ArgumentError{fmt.Sprintf("memory base must be %#x", ramBase)}
	case spec.MemSize == 0:
		return nil, &ArgumentError{"memory size must not be 0"}
	case spec.Cores == 0 || spec.Cores > maxCores:
		return nil, &ArgumentError{fmt.Sprintf("cores must be 1 to %d", maxCores)}
	}

	arch := sys.GuestArch(spec.RV64)

	executable := l.Executable
	if executable == "" {
		executable = arch.QemuExecutable()
	}

	path, err := exec.LookPath(executable)
	if err != nil {
		return nil, fmt.Errorf("find qemu: %w", err)
	}

	machine := &Machine{
		executable:  path,
		spec:        spec,
		kvm:         !l.NoKVM && arch.KVMAvailable(),
		stdin:       l.Stdin,
		stdout:      l.Stdout,
		gracePeriod: l.GracePeriod,
		linkByName:  netlink.LinkByName,
	}

	if machine.stdin == nil {
		machine.stdin = os.Stdin
	}

	if machine.stdout == nil {
		machine.stdout = os.Stdout
	}

	if machine.gracePeriod == 0 {
		machine.gracePeriod = DefaultGracePeriod
	}

	return machine, nil
}
