// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type outputProcessor func() error

// logLines creates an [outputProcessor] that logs every non-empty line
// written to the returned pipe.
//
// The caller is responsible to close the writePipe. This terminates the
// processor.
func logLines(logger *slog.Logger, level slog.Level) (outputProcessor, *os.File, error) {
	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("pipe: %w", err)
	}

	processor := func() error {
		defer readPipe.Close()

		// Carriage returns are removed by [bufio.ScanLines].
		scanner := bufio.NewScanner(readPipe)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			logger.Log(context.Background(), level, line)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		return nil
	}

	return processor, writePipe, nil
}
