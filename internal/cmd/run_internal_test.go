// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/lifecycle"
	"github.com/aibor/rvrun/internal/qemu"
	"github.com/aibor/rvrun/internal/topology"
)

func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedOutput string
	}{
		{
			name: "cancelled",
			err: fmt.Errorf("run machine: %w: %w", context.Canceled,
				&qemu.CommandError{Err: assert.AnError, ExitCode: -1}),
			expectedOutput: "",
		},
		{
			name:           "machine creation",
			err:            &lifecycle.MachineCreationError{Err: assert.AnError},
			expectedOutput: `level=ERROR msg="Failed to create machine"`,
		},
		{
			name: "boot artifact",
			err: &lifecycle.BootArtifactError{
				Artifact: "kernel",
				Path:     "linux.img",
				Err:      assert.AnError,
			},
			expectedOutput: "artifact=kernel",
		},
		{
			name: "device attach",
			err: &topology.DeviceAttachError{
				Component: "nvme",
				Err:       assert.AnError,
			},
			expectedOutput: "component=nvme",
		},
		{
			name:           "qemu",
			err:            fmt.Errorf("run machine: %w", &qemu.CommandError{Err: assert.AnError, ExitCode: 1}),
			expectedOutput: "exit_code=1",
		},
		{
			name:           "other",
			err:            assert.AnError,
			expectedOutput: "msg=\"assert.AnError general error for testing\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			setupLogging(&buf)
			handleRunError(tt.err)

			if tt.expectedOutput == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tt.expectedOutput)
		})
	}
}

func TestHandleParseArgsError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		logged string
	}{
		{name: "help", err: config.ErrHelp},
		{name: "no bootrom", err: config.ErrNoBootrom},
		{
			name:   "argument",
			err:    &config.ArgumentError{Option: "res", Err: config.ErrResolutionSeparator},
			logged: `msg="Invalid arguments"`,
		},
		{
			name:   "args source",
			err:    &ArgsSourceError{Source: ".rvrun-args", Err: assert.AnError},
			logged: "source=.rvrun-args",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			setupLogging(&buf)
			handleParseArgsError(tt.err)

			if tt.logged == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tt.logged)
		})
	}
}

func TestProgramName(t *testing.T) {
	assert.Equal(t, "rvrun", programName(nil))
	assert.Equal(t, "rvrun-dev", programName([]string{"/tmp/bin/rvrun-dev"}))
}

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer

	setupLogging(&buf)
	setVerbose(false)
	assert.Equal(t, "WARN", logLevel.Level().String())

	setVerbose(true)
	assert.Equal(t, "DEBUG", logLevel.Level().String())
}
