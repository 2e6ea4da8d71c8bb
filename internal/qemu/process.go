// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/aibor/rvrun/internal/sys"
)

// process is a started QEMU process and its output processors.
type process struct {
	ctx        context.Context //nolint:containedctx
	cmd        *exec.Cmd
	processors errgroup.Group
	done       bool
	err        error
}

// wait waits for the process and all processors. It is safe to call it more
// than once.
func (p *process) wait() error {
	if p.done {
		return p.err
	}

	cmdErr := p.cmd.Wait()
	if cmdErr != nil {
		cmdErr = wrapCommandError(cmdErr)

		// Terminated due to cancellation.
		if p.ctx.Err() != nil {
			cmdErr = fmt.Errorf("%w: %w", context.Cause(p.ctx), cmdErr)
		}
	}

	processorsErr := p.processors.Wait()
	if processorsErr != nil {
		processorsErr = fmt.Errorf("stderr: %w", processorsErr)
	}

	p.done = true
	p.err = errors.Join(cmdErr, processorsErr)

	return p.err
}

func wrapCommandError(err error) error {
	cmdErr := &CommandError{Err: err}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}

	return cmdErr
}

// DumpDTB implements [core.Machine].
//
// QEMU is run once to write the device tree blob it generates for the
// machine.
func (m *Machine) DumpDTB(ctx context.Context, path, cmdline string) error {
	if err := m.configurable(); err != nil {
		return err
	}

	path, err := sys.AbsolutePath(path)
	if err != nil {
		return err
	}

	args, err := BuildArgumentStrings(m.arguments(cmdline, "dumpdtb="+path))
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, m.executable, args...)
	slog.Debug("QEMU dump command", slog.String("command", cmd.String()))

	out, err := cmd.CombinedOutput()
	if err != nil {
		slog.Debug("QEMU dump output", slog.String("output", string(out)))
		return wrapCommandError(err)
	}

	return nil
}

// Start implements [core.Machine].
//
// Stderr of QEMU is forwarded to the default [slog.Logger]. If ctx is
// cancelled, QEMU is terminated.
func (m *Machine) Start(ctx context.Context, cmdline string) error {
	if err := m.configurable(); err != nil {
		return err
	}

	args, err := BuildArgumentStrings(m.arguments(cmdline))
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, m.executable, args...)
	cmd.Stdin = m.stdin
	cmd.Stdout = m.stdout
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	cmd.WaitDelay = m.gracePeriod

	proc := &process{ctx: ctx, cmd: cmd}

	logger := slog.Default().With(slog.String("source", "qemu"))

	processor, writePipe, err := logLines(logger, slog.LevelWarn)
	if err != nil {
		return err
	}

	proc.processors.Go(processor)

	cmd.Stderr = writePipe

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	startErr := cmd.Start()

	// The child has its own copy now. Closing ours lets the processor
	// terminate once QEMU exits.
	_ = writePipe.Close()

	if startErr != nil {
		_ = proc.processors.Wait()
		return wrapCommandError(startErr)
	}

	m.proc = proc

	return nil
}

// Run implements [core.Machine].
//
// If stdin is a terminal, it is set to raw mode while QEMU runs, so all
// input is passed to the guest.
func (m *Machine) Run() error {
	if m.freed {
		return ErrAlreadyFreed
	}

	if m.proc == nil {
		return ErrNotStarted
	}

	if restore := m.makeRaw(); restore != nil {
		defer restore()
	}

	return m.proc.wait()
}

func (m *Machine) makeRaw() func() {
	file, ok := m.stdin.(interface{ Fd() uintptr })
	if !ok {
		return nil
	}

	fd := int(file.Fd()) //nolint:gosec

	if !term.IsTerminal(fd) {
		return nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		slog.Warn("Failed to set terminal raw mode", slog.Any("error", err))
		return nil
	}

	return func() {
		if err := term.Restore(fd, state); err != nil {
			slog.Warn("Failed to restore terminal", slog.Any("error", err))
		}
	}
}

// Free implements [core.Machine].
//
// A still running QEMU process is killed.
func (m *Machine) Free() error {
	if m.freed {
		return ErrAlreadyFreed
	}

	m.freed = true

	if m.proc == nil || m.proc.done {
		return nil
	}

	if err := m.proc.cmd.Process.Kill(); err != nil {
		slog.Debug("Kill QEMU", slog.Any("error", err))
	}

	_ = m.proc.wait()

	return nil
}
