// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/core/coretest"
	"github.com/aibor/rvrun/internal/topology"
)

func TestBuilder_Attach(t *testing.T) {
	machine := &coretest.Machine{}

	topo, err := topology.NewBuilder().Attach(machine, testConfig(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"AttachCoreTimer",
		"AttachDistributor",
		"AttachBus",
		"AttachSerial",
		"AttachSyscon",
		"AttachInput",
		"AttachInput",
		"AttachFramebuffer",
		"AttachNetwork",
		"AttachRTC",
	}, machine.Calls)

	assert.Equal(t, map[string][]core.IRQ{
		"pci":      {1, 2, 3, 4},
		"uart":     {5},
		"mouse":    {6},
		"keyboard": {7},
		"net":      {8},
		"rtc":      {9},
	}, topo.IRQs)

	assert.Equal(t, []string{"console=tty0"}, topo.Cmdline.Tokens())
	assert.False(t, topo.Cmdline.Finalized())

	require.NotNil(t, machine.Framebuffer.Pointer)
	require.NotNil(t, machine.Framebuffer.Keyboard)
	assert.Equal(t, core.InputPointer, machine.Framebuffer.Pointer.Kind())
	assert.Equal(t, core.InputKeyboard, machine.Framebuffer.Keyboard.Kind())
	assert.NotEqual(t, machine.Framebuffer.Pointer.IRQ(), machine.Framebuffer.Keyboard.IRQ())
	assert.Equal(t, uint32(640), machine.Framebuffer.Width)
	assert.Equal(t, uint32(480), machine.Framebuffer.Height)
}

func TestBuilder_Attach_UniqueIRQs(t *testing.T) {
	configs := map[string]config.VMConfig{
		"defaults": testConfig(nil),
		"storage": testConfig(func(c *config.VMConfig) {
			c.Image = "disk.img"
		}),
		"nogui": testConfig(func(c *config.VMConfig) {
			c.NoGUI = true
		}),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			machine := &coretest.Machine{}

			topo, err := topology.NewBuilder().Attach(machine, cfg)
			require.NoError(t, err)

			seen := map[core.IRQ]string{}

			for owner, irqs := range topo.IRQs {
				for _, irq := range irqs {
					other, exists := seen[irq]
					assert.False(t, exists, "irq %d used by %s and %s", irq, owner, other)
					seen[irq] = owner
				}
			}
		})
	}
}

func TestBuilder_Attach_Cmdline(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.VMConfig
		expected string
	}{
		{
			name:     "display",
			cfg:      testConfig(nil),
			expected: "console=tty0",
		},
		{
			name: "storage and display",
			cfg: testConfig(func(c *config.VMConfig) {
				c.Image = "disk.img"
			}),
			expected: "root=/dev/nvme0n1 rootflags=discard rw console=tty0",
		},
		{
			name: "storage",
			cfg: testConfig(func(c *config.VMConfig) {
				c.Image = "disk.img"
				c.NoGUI = true
			}),
			expected: "root=/dev/nvme0n1 rootflags=discard rw",
		},
		{
			name: "none",
			cfg: testConfig(func(c *config.VMConfig) {
				c.NoGUI = true
			}),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := topology.NewBuilder().Attach(&coretest.Machine{}, tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, strings.Join(topo.Cmdline.Tokens(), " "))
		})
	}
}

func TestBuilder_Attach_Failures(t *testing.T) {
	tests := []struct {
		name              string
		cfg               config.VMConfig
		prepare           func(*coretest.Machine)
		expectedErr       error
		expectedComponent string
		notCalled         string
	}{
		{
			name: "storage",
			cfg: testConfig(func(c *config.VMConfig) {
				c.Image = "disk.img"
			}),
			prepare: func(m *coretest.Machine) {
				m.FailOn("AttachStorage", nil)
			},
			expectedErr:       coretest.ErrInjected,
			expectedComponent: "nvme",
			notCalled:         "AttachInput",
		},
		{
			name: "distributor",
			cfg:  testConfig(nil),
			prepare: func(m *coretest.Machine) {
				m.FailOn("AttachDistributor", nil)
			},
			expectedErr:       coretest.ErrInjected,
			expectedComponent: "plic",
			notCalled:         "AttachBus",
		},
		{
			name: "framebuffer",
			cfg:  testConfig(nil),
			prepare: func(m *coretest.Machine) {
				m.FailOn("AttachFramebuffer", nil)
			},
			expectedErr:       coretest.ErrInjected,
			expectedComponent: "framebuffer",
			notCalled:         "AttachNetwork",
		},
		{
			name: "irq conflict",
			cfg:  testConfig(nil),
			prepare: func(m *coretest.Machine) {
				m.Distributor = &coretest.Distributor{Repeat: true}
			},
			expectedErr:       topology.ErrIRQConflict,
			expectedComponent: "pci",
			notCalled:         "AttachBus",
		},
		{
			name: "irq exhausted",
			cfg:  testConfig(nil),
			prepare: func(m *coretest.Machine) {
				m.Distributor = &coretest.Distributor{Limit: 5}
			},
			expectedErr:       coretest.ErrInjected,
			expectedComponent: "mouse",
			notCalled:         "AttachInput",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := &coretest.Machine{}
			tt.prepare(machine)

			topo, err := topology.NewBuilder().Attach(machine, tt.cfg)
			assert.Nil(t, topo)
			require.ErrorIs(t, err, tt.expectedErr)
			require.ErrorIs(t, err, &topology.DeviceAttachError{})

			var attachErr *topology.DeviceAttachError
			require.ErrorAs(t, err, &attachErr)
			assert.Equal(t, tt.expectedComponent, attachErr.Component)

			assert.False(t, machine.Called(tt.notCalled))
			assert.False(t, machine.Called("Free"))
		})
	}
}

func TestBuilder_Attach_InvalidLayout(t *testing.T) {
	builder := topology.NewBuilder()
	builder.Layout.Network = builder.Layout.Serial

	machine := &coretest.Machine{}

	_, err := builder.Attach(machine, testConfig(nil))
	require.ErrorIs(t, err, topology.ErrWindowOverlap)

	assert.Empty(t, machine.Calls)
}
