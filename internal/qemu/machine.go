// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/vishvananda/netlink"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/sys"
)

const machineType = "virt"

// Machine is a QEMU virt machine.
//
// Devices are collected as QEMU arguments until the machine is started.
type Machine struct {
	executable  string
	spec        core.MachineSpec
	kvm         bool
	stdin       io.Reader
	stdout      io.Writer
	gracePeriod time.Duration
	linkByName  func(name string) (netlink.Link, error)

	bootrom string
	kernel  string
	dtb     string

	dist    *plic
	devices []Argument
	display bool

	proc  *process
	freed bool
}

var _ core.Machine = (*Machine)(nil)

func (m *Machine) configurable() error {
	switch {
	case m.freed:
		return ErrAlreadyFreed
	case m.proc != nil:
		return ErrAlreadyStarted
	default:
		return nil
	}
}

func (m *Machine) loadArtifact(dst *string, path string) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if path == "" {
		return nil
	}

	abs, err := sys.ValidateFilePath(path)
	if err != nil {
		return err
	}

	*dst = abs

	return nil
}

// LoadBootrom implements [core.Machine].
func (m *Machine) LoadBootrom(path string) error {
	return m.loadArtifact(&m.bootrom, path)
}

// LoadKernel implements [core.Machine].
func (m *Machine) LoadKernel(path string) error {
	return m.loadArtifact(&m.kernel, path)
}

// LoadDTB implements [core.Machine].
func (m *Machine) LoadDTB(path string) error {
	return m.loadArtifact(&m.dtb, path)
}

// formatMemory formats a byte size with the largest exact unit QEMU accepts.
func formatMemory(size uint64) string {
	switch {
	case size%config.GiB == 0:
		return strconv.FormatUint(size/config.GiB, 10) + "G"
	case size%config.MiB == 0:
		return strconv.FormatUint(size/config.MiB, 10) + "M"
	case size%config.KiB == 0:
		return strconv.FormatUint(size/config.KiB, 10) + "K"
	default:
		return strconv.FormatUint(size, 10) + "B"
	}
}

// arguments compiles the argument list for the QEMU command.
func (m *Machine) arguments(cmdline string, machineOpts ...string) []Argument {
	args := []Argument{
		UniqueArg("machine", machineType).With(machineOpts...),
		UniqueArg("m", formatMemory(m.spec.MemSize)),
		UniqueArg("smp", strconv.FormatUint(m.spec.Cores, 10)),
	}

	if m.bootrom != "" {
		args = append(args, UniqueArg("bios", m.bootrom))
	}

	if m.kernel != "" {
		args = append(args, UniqueArg("kernel", m.kernel))

		if cmdline != "" {
			args = append(args, UniqueArg("append", cmdline))
		}
	} else if cmdline != "" {
		slog.Warn("Boot command line requires a kernel, dropping it",
			slog.String("cmdline", cmdline))
	}

	if m.dtb != "" {
		args = append(args, UniqueArg("dtb", m.dtb))
	}

	if m.kvm {
		args = append(args, UniqueArg("accel", "kvm"))
	}

	if !m.display {
		// Disable video output.
		args = append(args, UniqueArg("display", "none"))
	}

	args = append(args,
		// Disable QEMU monitor.
		UniqueArg("monitor", "none"),
		// Guest must not reboot.
		UniqueArg("no-reboot"),
		// Disable all default devices.
		UniqueArg("nodefaults"),
		// Do not load any user config files.
		UniqueArg("no-user-config"),
	)

	return append(args, m.devices...)
}

func (m *Machine) addDevices(args ...Argument) {
	m.devices = append(m.devices, args...)
}

func (m *Machine) checkDistributor(dist core.Distributor) error {
	if m.dist == nil || dist != core.Distributor(m.dist) {
		return &ArgumentError{"distributor not attached to this machine"}
	}

	return nil
}

func checkWindow(name string, win core.Window) error {
	if win.Size == 0 {
		return &ArgumentError{name + " window must not be empty"}
	}

	return nil
}

// AttachCoreTimer implements [core.Machine].
//
// The core local interruptor is part of the virt machine.
func (m *Machine) AttachCoreTimer(win core.Window, cores uint64) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if cores != m.spec.Cores {
		return &ArgumentError{fmt.Sprintf("core timer for %d cores on %d core machine",
			cores, m.spec.Cores)}
	}

	return checkWindow("core timer", win)
}

// AttachDistributor implements [core.Machine].
func (m *Machine) AttachDistributor(win core.Window, _ uint64) (core.Distributor, error) {
	if err := m.configurable(); err != nil {
		return nil, err
	}

	if m.dist != nil {
		return nil, &ArgumentError{"distributor already attached"}
	}

	if err := checkWindow("distributor", win); err != nil {
		return nil, err
	}

	m.dist = &plic{}

	return m.dist, nil
}

// AttachBus implements [core.Machine].
//
// The PCIe host bridge is part of the virt machine.
func (m *Machine) AttachBus(win core.Window, dist core.Distributor, irqs []core.IRQ) (core.Bus, error) {
	if err := m.configurable(); err != nil {
		return nil, err
	}

	if err := m.checkDistributor(dist); err != nil {
		return nil, err
	}

	if err := checkWindow("bus", win); err != nil {
		return nil, err
	}

	return &pciBus{window: win, irqs: irqs}, nil
}

// AttachSerial implements [core.Machine].
//
// The serial console is connected to the standard streams of the process.
func (m *Machine) AttachSerial(win core.Window, dist core.Distributor, _ core.IRQ) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if err := m.checkDistributor(dist); err != nil {
		return err
	}

	if err := checkWindow("serial", win); err != nil {
		return err
	}

	m.addDevices(
		RepeatableArg("chardev", "stdio", "id=con0", "signal=off"),
		RepeatableArg("serial", "chardev:con0"),
	)

	return nil
}

// AttachSyscon implements [core.Machine].
func (m *Machine) AttachSyscon(win core.Window) error {
	if err := m.configurable(); err != nil {
		return err
	}

	return checkWindow("syscon", win)
}

// AttachInput implements [core.Machine].
func (m *Machine) AttachInput(
	win core.Window,
	dist core.Distributor,
	irq core.IRQ,
	kind core.InputKind,
) (core.InputDevice, error) {
	if err := m.configurable(); err != nil {
		return nil, err
	}

	if err := m.checkDistributor(dist); err != nil {
		return nil, err
	}

	var device string

	switch kind {
	case core.InputPointer:
		device = "virtio-mouse-pci"
	case core.InputKeyboard:
		device = "virtio-keyboard-pci"
	default:
		return nil, &ArgumentError{"unknown input kind " + kind.String()}
	}

	if err := checkWindow(kind.String(), win); err != nil {
		return nil, err
	}

	m.addDevices(RepeatableArg("device", device))

	return &inputDevice{kind: kind, irq: irq}, nil
}

// AttachFramebuffer implements [core.Machine].
func (m *Machine) AttachFramebuffer(win core.Window, opts core.FramebufferOptions) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if opts.Pointer == nil || opts.Keyboard == nil {
		return &ArgumentError{"framebuffer requires pointer and keyboard"}
	}

	if err := checkWindow("framebuffer", win); err != nil {
		return err
	}

	m.addDevices(RepeatableArg("device",
		"virtio-gpu-pci",
		"xres="+strconv.FormatUint(uint64(opts.Width), 10),
		"yres="+strconv.FormatUint(uint64(opts.Height), 10),
	))
	m.display = true

	return nil
}

// AttachRTC implements [core.Machine].
//
// The goldfish real time clock is part of the virt machine.
func (m *Machine) AttachRTC(win core.Window, dist core.Distributor, _ core.IRQ) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if err := m.checkDistributor(dist); err != nil {
		return err
	}

	return checkWindow("rtc", win)
}
