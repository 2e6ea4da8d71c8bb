// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology

import (
	"fmt"
	"log/slog"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
)

// Boot arguments added by components.
var (
	StorageCmdline = []string{"root=/dev/nvme0n1", "rootflags=discard", "rw"}
	DisplayCmdline = []string{"console=tty0"}
)

// Topology is the result of a successful [Builder.Attach].
type Topology struct {
	Descriptor Descriptor

	// Interrupt lines by component name.
	IRQs map[string][]core.IRQ

	Cmdline *Cmdline
}

// Builder attaches the devices of a machine.
type Builder struct {
	Layout Layout
}

// NewBuilder returns a [Builder] for the [DefaultLayout].
func NewBuilder() *Builder {
	return &Builder{Layout: DefaultLayout()}
}

// Attach plans, validates and attaches all components for cfg to m.
//
// Any failure aborts the assembly. Components attached so far are not
// detached.
func (b *Builder) Attach(m core.Machine, cfg config.VMConfig) (*Topology, error) {
	desc := Plan(cfg, b.Layout)
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("validate topology: %w", err)
	}

	a := assembly{
		machine: m,
		cfg:     cfg,
		owners:  map[core.IRQ]string{},
		topology: &Topology{
			Descriptor: desc,
			IRQs:       map[string][]core.IRQ{},
			Cmdline:    &Cmdline{},
		},
	}

	for _, c := range desc {
		if err := a.attach(c); err != nil {
			return nil, &DeviceAttachError{Component: c.Name, Err: err}
		}

		slog.Debug("Attached component",
			slog.String("name", c.Name),
			slog.String("window", c.Window.String()),
			slog.Any("irqs", a.topology.IRQs[c.Name]),
		)
	}

	return a.topology, nil
}

// assembly holds the handles lent to later components.
type assembly struct {
	machine  core.Machine
	cfg      config.VMConfig
	topology *Topology
	owners   map[core.IRQ]string

	dist     core.Distributor
	bus      core.Bus
	pointer  core.InputDevice
	keyboard core.InputDevice
}

func (a *assembly) allocIRQs(c Component) ([]core.IRQ, error) {
	if c.IRQs == 0 {
		return nil, nil
	}

	if a.dist == nil {
		return nil, fmt.Errorf("%w: no distributor", ErrDependency)
	}

	irqs := make([]core.IRQ, 0, c.IRQs)

	for range c.IRQs {
		irq, err := a.dist.AllocIRQ()
		if err != nil {
			return nil, fmt.Errorf("allocate irq: %w", err)
		}

		if owner, exists := a.owners[irq]; exists {
			return nil, fmt.Errorf("%w: %d owned by %s", ErrIRQConflict, irq, owner)
		}

		a.owners[irq] = c.Name
		irqs = append(irqs, irq)
	}

	a.topology.IRQs[c.Name] = irqs

	return irqs, nil
}

//nolint:cyclop
func (a *assembly) attach(c Component) error {
	irqs, err := a.allocIRQs(c)
	if err != nil {
		return err
	}

	m := a.machine

	switch c.Kind {
	case KindRAM:
		// Created with the machine.
		return nil
	case KindCoreTimer:
		return m.AttachCoreTimer(c.Window, a.cfg.Cores)
	case KindDistributor:
		a.dist, err = m.AttachDistributor(c.Window, a.cfg.Cores)
		return err
	case KindBus:
		a.bus, err = m.AttachBus(c.Window, a.dist, irqs)
		return err
	case KindSerial:
		return m.AttachSerial(c.Window, a.dist, irqs[0])
	case KindSyscon:
		return m.AttachSyscon(c.Window)
	case KindStorage:
		if err := m.AttachStorage(a.bus, a.cfg.Image, true); err != nil {
			return err
		}

		return a.topology.Cmdline.Append(StorageCmdline...)
	case KindPointer:
		a.pointer, err = m.AttachInput(c.Window, a.dist, irqs[0], core.InputPointer)
		return err
	case KindKeyboard:
		a.keyboard, err = m.AttachInput(c.Window, a.dist, irqs[0], core.InputKeyboard)
		return err
	case KindFramebuffer:
		err := m.AttachFramebuffer(c.Window, core.FramebufferOptions{
			Width:    a.cfg.Resolution.Width,
			Height:   a.cfg.Resolution.Height,
			Pointer:  a.pointer,
			Keyboard: a.keyboard,
		})
		if err != nil {
			return err
		}

		return a.topology.Cmdline.Append(DisplayCmdline...)
	case KindNetwork:
		return m.AttachNetwork(c.Window, a.dist, irqs[0], core.NetworkOptions{
			TapInterface: a.cfg.NetTap,
		})
	case KindRTC:
		return m.AttachRTC(c.Window, a.dist, irqs[0])
	default:
		return fmt.Errorf("unknown component kind %s", c.Kind)
	}
}
