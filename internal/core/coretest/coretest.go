// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package coretest provides an in-memory [core.Library] that records all
// calls for tests.
package coretest

import (
	"context"
	"errors"
	"slices"

	"github.com/aibor/rvrun/internal/core"
)

// ErrInjected is the default failure used by [Machine.FailOn].
var ErrInjected = errors.New("injected failure")

// Library creates a single recording [Machine].
type Library struct {
	// Machine returned by CreateMachine. A new one is created if nil.
	Machine *Machine

	// Err is returned by CreateMachine if set.
	Err error

	Specs []core.MachineSpec
}

// CreateMachine implements [core.Library].
func (l *Library) CreateMachine(spec core.MachineSpec) (core.Machine, error) {
	l.Specs = append(l.Specs, spec)

	if l.Err != nil {
		return nil, l.Err
	}

	if l.Machine == nil {
		l.Machine = &Machine{}
	}

	l.Machine.Spec = spec

	return l.Machine, nil
}

// Distributor issues interrupt lines starting at 1.
type Distributor struct {
	// Repeat makes every allocation return the same line.
	Repeat bool

	// Limit is the highest line that can be issued. Unlimited if 0.
	Limit core.IRQ

	Issued []core.IRQ
}

// AllocIRQ implements [core.Distributor].
func (d *Distributor) AllocIRQ() (core.IRQ, error) {
	irq := core.IRQ(len(d.Issued) + 1)
	if d.Repeat {
		irq = 1
	}

	if d.Limit > 0 && irq > d.Limit {
		return 0, ErrInjected
	}

	d.Issued = append(d.Issued, irq)

	return irq, nil
}

// Bus is a recorded bus controller.
type Bus struct {
	Win  core.Window
	IRQs []core.IRQ
}

// Window implements [core.Bus].
func (b *Bus) Window() core.Window {
	return b.Win
}

// Input is a recorded input device.
type Input struct {
	InputKind core.InputKind
	Line      core.IRQ
}

// Kind implements [core.InputDevice].
func (i *Input) Kind() core.InputKind {
	return i.InputKind
}

// IRQ implements [core.InputDevice].
func (i *Input) IRQ() core.IRQ {
	return i.Line
}

// Attachment is a recorded device attach call.
type Attachment struct {
	Method string
	Window core.Window
	IRQs   []core.IRQ
}

// Machine records every call in order.
type Machine struct {
	Spec core.MachineSpec

	// Distributor handed out by AttachDistributor. A new one is created if
	// nil.
	Distributor *Distributor

	// Calls holds the names of all called methods in order.
	Calls []string

	Attachments []Attachment

	Bootrom string
	Kernel  string
	DTB     string
	Storage string

	Framebuffer core.FramebufferOptions
	Network     core.NetworkOptions

	DumpPath    string
	DumpCmdline string

	StartCmdline string

	failures map[string]error
}

// FailOn makes the named method return err. If err is nil, [ErrInjected] is
// used.
func (m *Machine) FailOn(method string, err error) {
	if m.failures == nil {
		m.failures = map[string]error{}
	}

	if err == nil {
		err = ErrInjected
	}

	m.failures[method] = err
}

// Called reports whether the named method was called.
func (m *Machine) Called(method string) bool {
	return slices.Contains(m.Calls, method)
}

func (m *Machine) record(method string) error {
	m.Calls = append(m.Calls, method)
	return m.failures[method]
}

func (m *Machine) attach(method string, win core.Window, irqs ...core.IRQ) error {
	if err := m.record(method); err != nil {
		return err
	}

	m.Attachments = append(m.Attachments, Attachment{
		Method: method,
		Window: win,
		IRQs:   irqs,
	})

	return nil
}

// LoadBootrom implements [core.Machine].
func (m *Machine) LoadBootrom(path string) error {
	m.Bootrom = path
	return m.record("LoadBootrom")
}

// LoadKernel implements [core.Machine].
func (m *Machine) LoadKernel(path string) error {
	m.Kernel = path
	return m.record("LoadKernel")
}

// LoadDTB implements [core.Machine].
func (m *Machine) LoadDTB(path string) error {
	m.DTB = path
	return m.record("LoadDTB")
}

// AttachCoreTimer implements [core.Machine].
func (m *Machine) AttachCoreTimer(win core.Window, _ uint64) error {
	return m.attach("AttachCoreTimer", win)
}

// AttachDistributor implements [core.Machine].
func (m *Machine) AttachDistributor(win core.Window, _ uint64) (core.Distributor, error) {
	if err := m.attach("AttachDistributor", win); err != nil {
		return nil, err
	}

	if m.Distributor == nil {
		m.Distributor = &Distributor{}
	}

	return m.Distributor, nil
}

// AttachBus implements [core.Machine].
func (m *Machine) AttachBus(win core.Window, _ core.Distributor, irqs []core.IRQ) (core.Bus, error) {
	if err := m.attach("AttachBus", win, irqs...); err != nil {
		return nil, err
	}

	return &Bus{Win: win, IRQs: irqs}, nil
}

// AttachSerial implements [core.Machine].
func (m *Machine) AttachSerial(win core.Window, _ core.Distributor, irq core.IRQ) error {
	return m.attach("AttachSerial", win, irq)
}

// AttachSyscon implements [core.Machine].
func (m *Machine) AttachSyscon(win core.Window) error {
	return m.attach("AttachSyscon", win)
}

// AttachStorage implements [core.Machine].
func (m *Machine) AttachStorage(bus core.Bus, image string, _ bool) error {
	m.Storage = image
	return m.attach("AttachStorage", bus.Window())
}

// AttachInput implements [core.Machine].
func (m *Machine) AttachInput(
	win core.Window,
	_ core.Distributor,
	irq core.IRQ,
	kind core.InputKind,
) (core.InputDevice, error) {
	if err := m.attach("AttachInput", win, irq); err != nil {
		return nil, err
	}

	return &Input{InputKind: kind, Line: irq}, nil
}

// AttachFramebuffer implements [core.Machine].
func (m *Machine) AttachFramebuffer(win core.Window, opts core.FramebufferOptions) error {
	m.Framebuffer = opts
	return m.attach("AttachFramebuffer", win)
}

// AttachNetwork implements [core.Machine].
func (m *Machine) AttachNetwork(
	win core.Window,
	_ core.Distributor,
	irq core.IRQ,
	opts core.NetworkOptions,
) error {
	m.Network = opts
	return m.attach("AttachNetwork", win, irq)
}

// AttachRTC implements [core.Machine].
func (m *Machine) AttachRTC(win core.Window, _ core.Distributor, irq core.IRQ) error {
	return m.attach("AttachRTC", win, irq)
}

// DumpDTB implements [core.Machine].
func (m *Machine) DumpDTB(_ context.Context, path, cmdline string) error {
	m.DumpPath = path
	m.DumpCmdline = cmdline

	return m.record("DumpDTB")
}

// Start implements [core.Machine].
func (m *Machine) Start(_ context.Context, cmdline string) error {
	m.StartCmdline = cmdline
	return m.record("Start")
}

// Run implements [core.Machine].
func (m *Machine) Run() error {
	return m.record("Run")
}

// Free implements [core.Machine].
func (m *Machine) Free() error {
	return m.record("Free")
}
