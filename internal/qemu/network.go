// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/aibor/rvrun/internal/core"
)

const netdevID = "net0"

// checkTap verifies the named host interface is a TAP device.
func (m *Machine) checkTap(name string) error {
	link, err := m.linkByName(name)
	if err != nil {
		return fmt.Errorf("find interface %s: %w", name, err)
	}

	tuntap, ok := link.(*netlink.Tuntap)
	if !ok || tuntap.Mode == netlink.TUNTAP_MODE_TUN {
		return fmt.Errorf("%s (%s): %w", name, link.Type(), ErrNotTapInterface)
	}

	if link.Attrs().Flags&net.FlagUp == 0 {
		slog.Warn("TAP interface is down", slog.String("interface", name))
	}

	return nil
}

// AttachNetwork implements [core.Machine].
//
// Without a TAP interface, QEMU user mode networking is used.
func (m *Machine) AttachNetwork(
	win core.Window,
	dist core.Distributor,
	_ core.IRQ,
	opts core.NetworkOptions,
) error {
	if err := m.configurable(); err != nil {
		return err
	}

	if err := m.checkDistributor(dist); err != nil {
		return err
	}

	if err := checkWindow("network", win); err != nil {
		return err
	}

	netdev := RepeatableArg("netdev", "user", "id="+netdevID)

	if opts.TapInterface != "" {
		if err := m.checkTap(opts.TapInterface); err != nil {
			return err
		}

		netdev = RepeatableArg("netdev",
			"tap",
			"id="+netdevID,
			"ifname="+opts.TapInterface,
			"script=no",
			"downscript=no",
		)
	}

	m.addDevices(
		netdev,
		RepeatableArg("device", "virtio-net-pci", "netdev="+netdevID),
	)

	return nil
}
