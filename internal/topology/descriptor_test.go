// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/topology"
)

func testConfig(mod func(*config.VMConfig)) config.VMConfig {
	cfg := config.DefaultVMConfig()
	cfg.Bootrom = "boot.bin"

	if mod != nil {
		mod(&cfg)
	}

	return cfg
}

func kinds(desc topology.Descriptor) []string {
	names := make([]string, 0, len(desc))
	for _, c := range desc {
		names = append(names, c.Name)
	}

	return names
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.VMConfig
		expected []string
	}{
		{
			name: "defaults",
			cfg:  testConfig(nil),
			expected: []string{
				"ram", "clint", "plic", "pci", "uart", "syscon",
				"mouse", "keyboard", "framebuffer", "net", "rtc",
			},
		},
		{
			name: "storage without gui",
			cfg: testConfig(func(c *config.VMConfig) {
				c.Image = "disk.img"
				c.NoGUI = true
			}),
			expected: []string{
				"ram", "clint", "plic", "pci", "uart", "syscon",
				"nvme", "net", "rtc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := topology.Plan(tt.cfg, topology.DefaultLayout())
			assert.Equal(t, tt.expected, kinds(desc))
			assert.NoError(t, desc.Validate())
		})
	}
}

func TestPlan_Windows(t *testing.T) {
	cfg := testConfig(func(c *config.VMConfig) {
		c.Memory = 128 * config.MiB
		c.Resolution = config.Resolution{Width: 1280, Height: 720}
	})

	desc := topology.Plan(cfg, topology.DefaultLayout())

	require.True(t, desc.Has(topology.KindFramebuffer))
	assert.Equal(t, core.Window{Base: topology.RAMBase, Size: 128 << 20}, desc[0].Window)

	for _, c := range desc {
		if c.Kind == topology.KindFramebuffer {
			assert.Equal(t, core.Window{
				Base: topology.FramebufferBase,
				Size: 1280 * 720 * topology.FramebufferBPP,
			}, c.Window)
		}
	}
}

func TestDescriptor_Validate(t *testing.T) {
	win := func(base uint64) core.Window {
		return core.Window{Base: base, Size: 0x1000}
	}

	tests := []struct {
		name        string
		desc        topology.Descriptor
		expectedErr error
	}{
		{
			name: "valid",
			desc: topology.Descriptor{
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
				{Kind: topology.KindBus, Name: "pci", Window: win(0x1000), IRQs: 4},
				{Kind: topology.KindStorage, Name: "nvme"},
			},
		},
		{
			name: "overlap",
			desc: topology.Descriptor{
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
				{Kind: topology.KindSerial, Name: "uart", Window: win(0x800), IRQs: 1},
			},
			expectedErr: topology.ErrWindowOverlap,
		},
		{
			name: "empty window",
			desc: topology.Descriptor{
				{Kind: topology.KindSyscon, Name: "syscon"},
			},
			expectedErr: topology.ErrEmptyWindow,
		},
		{
			name: "bus before distributor",
			desc: topology.Descriptor{
				{Kind: topology.KindBus, Name: "pci", Window: win(0x1000), IRQs: 4},
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
			},
			expectedErr: topology.ErrDependency,
		},
		{
			name: "storage without bus",
			desc: topology.Descriptor{
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
				{Kind: topology.KindStorage, Name: "nvme"},
			},
			expectedErr: topology.ErrDependency,
		},
		{
			name: "framebuffer without keyboard",
			desc: topology.Descriptor{
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
				{Kind: topology.KindPointer, Name: "mouse", Window: win(0x1000), IRQs: 1},
				{Kind: topology.KindFramebuffer, Name: "framebuffer", Window: win(0x2000)},
			},
			expectedErr: topology.ErrDependency,
		},
		{
			name: "duplicate",
			desc: topology.Descriptor{
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x0)},
				{Kind: topology.KindDistributor, Name: "plic", Window: win(0x1000)},
			},
			expectedErr: topology.ErrDuplicateComponent,
		},
		{
			name: "window beyond address space",
			desc: topology.Descriptor{
				{Kind: topology.KindSyscon, Name: "syscon", Window: core.Window{Base: 0x1000, Size: ^uint64(0)}},
			},
			expectedErr: topology.ErrWindowOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestDescriptor_Validate_FramebufferTooLarge(t *testing.T) {
	cfg := testConfig(func(c *config.VMConfig) {
		c.Resolution = config.Resolution{Width: 8192, Height: 8192}
	})

	err := topology.Plan(cfg, topology.DefaultLayout()).Validate()
	assert.ErrorIs(t, err, topology.ErrWindowOverlap)
}

func TestDescriptor_Validate_WindowOverflow(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "memory",
			args: []string{"-mem", "17179869183G", "-nogui", "boot.bin"},
		},
		{
			name: "resolution",
			args: []string{"-res", "4294967295x4294967295", "boot.bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := config.Parse("rvrun", tt.args, io.Discard)
			require.NoError(t, err)

			err = topology.Plan(args.VM, topology.DefaultLayout()).Validate()
			assert.ErrorIs(t, err, topology.ErrWindowOverflow)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "nvme", topology.KindStorage.String())
	assert.Equal(t, "Kind(99)", topology.Kind(99).String())
}
