// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu implements [core.Library] on top of the QEMU RISC-V "virt"
// machine. It expects the required qemu-system-riscv32 or qemu-system-riscv64
// binary to be present on the system.
//
// Attaching devices only collects QEMU arguments. The QEMU process is started
// by [Machine.Start] and supervised by [Machine.Run]. Interrupt lines are
// allocated in process, as QEMU wires the devices of the virt machine itself.
package qemu
