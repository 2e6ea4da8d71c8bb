// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"log/slog"

	"github.com/diskfs/go-diskfs"

	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/sys"
)

const storageID = "nvme0"

// inspectImage opens the disk image read-only and logs its geometry.
func inspectImage(path string) error {
	disk, err := diskfs.Open(path, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer disk.Close()

	table := "none"
	if pt, err := disk.GetPartitionTable(); err == nil && pt != nil {
		table = pt.Type()
	}

	slog.Debug("Disk image",
		slog.String("path", path),
		slog.Int64("size", disk.Size),
		slog.Int64("block_size", disk.LogicalBlocksize),
		slog.String("partition_table", table),
	)

	return nil
}

// AttachStorage implements [core.Machine].
//
// The image is attached as raw NVMe drive with discard support.
func (m *Machine) AttachStorage(bus core.Bus, image string, writable bool) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if _, ok := bus.(*pciBus); !ok {
		return &ArgumentError{"storage requires the machine's bus"}
	}

	path, err := sys.ValidateFilePath(image)
	if err != nil {
		return err
	}

	if err := inspectImage(path); err != nil {
		return err
	}

	drive := RepeatableArg("drive",
		"file="+path,
		"if=none",
		"id="+storageID,
		"format=raw",
		"discard=unmap",
	)

	if !writable {
		drive = drive.With("readonly=on")
	} else if !sys.Writable(path) {
		return fmt.Errorf("%s: %w", path, ErrImageNotWritable)
	}

	m.addDevices(
		drive,
		RepeatableArg("device", "nvme", "serial=rvrun0", "drive="+storageID),
	)

	return nil
}
