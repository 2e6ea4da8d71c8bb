// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/lifecycle"
	"github.com/aibor/rvrun/internal/qemu"
	"github.com/aibor/rvrun/internal/topology"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return config.Name
	}

	return filepath.Base(args[0])
}

func parseArgs(args []string, cfg IO) (config.Args, error) {
	merged, err := MergedArgs(args[min(1, len(args)):], os.DirFS("."), localConfigFile)
	if err != nil {
		return config.Args{}, err
	}

	return config.Parse(programName(args), merged, cfg.Stdout)
}

func run(ctx context.Context, args config.Args, cfg IO) error {
	ctrl := &lifecycle.Controller{
		Library: &qemu.Library{
			Executable: args.QemuBinary,
			Stdin:      cfg.Stdin,
			Stdout:     cfg.Stdout,
		},
		Builder: topology.NewBuilder(),
	}

	return ctrl.Run(ctx, args.VM)
}

func handleParseArgsError(err error) {
	// Help, version and the short usage have been printed already.
	if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrNoBootrom) {
		return
	}

	var sourceErr *ArgsSourceError
	if errors.As(err, &sourceErr) {
		slog.Error("Failed to read arguments",
			slog.String("source", sourceErr.Source),
			slog.Any("error", sourceErr.Err),
		)

		return
	}

	slog.Error("Invalid arguments", slog.Any("error", err))
}

func handleRunError(err error) {
	var (
		attachErr   *topology.DeviceAttachError
		artifactErr *lifecycle.BootArtifactError
		cmdErr      *qemu.CommandError
	)

	switch {
	case errors.Is(err, context.Canceled):
		slog.Info("Machine interrupted", slog.Any("error", err))
	case errors.Is(err, &lifecycle.MachineCreationError{}):
		slog.Error("Failed to create machine", slog.Any("error", err))
	case errors.As(err, &artifactErr):
		slog.Error("Failed to load boot artifact",
			slog.String("artifact", artifactErr.Artifact),
			slog.Any("error", err),
		)
	case errors.As(err, &attachErr):
		slog.Error("Failed to attach device",
			slog.String("component", attachErr.Component),
			slog.Any("error", err),
		)
	case errors.As(err, &cmdErr):
		slog.Error("Machine failed",
			slog.Int("exit_code", cmdErr.ExitCode),
			slog.Any("error", err),
		)
	default:
		slog.Error(err.Error())
	}
}

// Run is the main entry point for the CLI command.
//
// Failures are reported as diagnostics on stderr. There is no distinct exit
// status for them.
func Run(ctx context.Context, args []string, cfg IO) {
	setupLogging(cfg.Stderr)

	parsed, err := parseArgs(args, cfg)
	if err != nil {
		handleParseArgsError(err)
		return
	}

	setVerbose(parsed.Verbose)

	if err := run(ctx, parsed, cfg); err != nil {
		handleRunError(err)
	}
}
