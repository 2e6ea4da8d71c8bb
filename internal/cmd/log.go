// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

var logLevel = new(slog.LevelVar)

// setupLogging installs the default logger. Only warnings and errors are
// logged until [setVerbose] is called.
func setupLogging(writer io.Writer) {
	logLevel.Set(slog.LevelWarn)

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: logLevel,
		},
	)))
}

func setVerbose(verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
}
