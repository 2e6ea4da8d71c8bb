// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package lifecycle drives a machine from creation to release.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/topology"
)

// Controller owns a single machine through all its states.
//
// A Controller can run only once.
type Controller struct {
	Library core.Library
	Builder *topology.Builder

	// OnTransition is called after every state change, if set.
	OnTransition func(from, to State)

	state    State
	topology *topology.Topology
	cmdline  *string
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Topology returns the attached topology once the machine is configured.
func (c *Controller) Topology() *topology.Topology {
	return c.topology
}

func (c *Controller) enter(to State) error {
	from := c.state

	next, ok := from.next()
	if !ok || next != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	c.state = to
	c.notify(from, to)

	return nil
}

func (c *Controller) notify(from, to State) {
	slog.Debug("Machine state changed",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	if c.OnTransition != nil {
		c.OnTransition(from, to)
	}
}

// Run creates, configures and starts the machine for cfg and blocks until the
// guest shuts down.
//
// If configuring or starting fails, the machine is dropped without being
// freed and the error is returned.
func (c *Controller) Run(ctx context.Context, cfg config.VMConfig) error {
	if c.state != Uninitialized {
		return fmt.Errorf("%w: already %s", ErrInvalidTransition, c.state)
	}

	machine, err := c.Library.CreateMachine(core.MachineSpec{
		MemBase: c.Builder.Layout.RAMBase,
		MemSize: cfg.Memory,
		Cores:   cfg.Cores,
		RV64:    cfg.RV64,
	})
	if err != nil {
		return &MachineCreationError{Err: err}
	}

	if err := c.enter(Created); err != nil {
		return err
	}

	if err := c.configure(machine, cfg); err != nil {
		return err
	}

	if err := c.enter(Configured); err != nil {
		return err
	}

	if cfg.DumpDTB != "" {
		c.dump(ctx, machine, cfg.DumpDTB)
	}

	cmdline, err := c.bootCmdline()
	if err != nil {
		return err
	}

	if err := machine.Start(ctx, cmdline); err != nil {
		return fmt.Errorf("start machine: %w", err)
	}

	if err := c.enter(Running); err != nil {
		return err
	}

	runErr := machine.Run()
	if runErr != nil {
		runErr = fmt.Errorf("run machine: %w", runErr)
	}

	if err := c.enter(Stopped); err != nil {
		return err
	}

	freeErr := machine.Free()
	if freeErr != nil {
		freeErr = fmt.Errorf("free machine: %w", freeErr)
	}

	if err := c.enter(Freed); err != nil {
		return err
	}

	return errors.Join(runErr, freeErr)
}

func (c *Controller) configure(machine core.Machine, cfg config.VMConfig) error {
	artifacts := []struct {
		name string
		path string
		load func(string) error
	}{
		{"bootrom", cfg.Bootrom, machine.LoadBootrom},
		{"kernel", cfg.Kernel, machine.LoadKernel},
		{"device tree", cfg.DTB, machine.LoadDTB},
	}

	for _, artifact := range artifacts {
		if err := artifact.load(artifact.path); err != nil {
			return &BootArtifactError{
				Artifact: artifact.name,
				Path:     artifact.path,
				Err:      err,
			}
		}
	}

	topo, err := c.Builder.Attach(machine, cfg)
	if err != nil {
		return err
	}

	c.topology = topo

	return nil
}

// dump writes the device tree blob. Failures are logged only.
func (c *Controller) dump(ctx context.Context, machine core.Machine, path string) {
	c.notify(Configured, DumpRequested)
	defer c.notify(DumpRequested, Configured)

	cmdline, err := c.bootCmdline()
	if err == nil {
		err = machine.DumpDTB(ctx, path, cmdline)
	}

	if err != nil {
		slog.Warn("Failed to dump device tree",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return
	}

	slog.Info("Device tree dumped", slog.String("path", path))
}

// bootCmdline finalizes the boot command line on first call and returns the
// same result afterwards.
func (c *Controller) bootCmdline() (string, error) {
	if c.cmdline != nil {
		return *c.cmdline, nil
	}

	cmdline, err := c.topology.Cmdline.Finalize()
	if err != nil {
		return "", fmt.Errorf("finalize boot command line: %w", err)
	}

	c.cmdline = &cmdline

	slog.Debug("Boot command line", slog.String("cmdline", cmdline))

	return cmdline, nil
}
