// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package topology

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/aibor/rvrun/internal/config"
	"github.com/aibor/rvrun/internal/core"
	"github.com/aibor/rvrun/internal/feature"
)

// Kind is the kind of a component.
type Kind int

// Component kinds.
const (
	KindRAM Kind = iota
	KindCoreTimer
	KindDistributor
	KindBus
	KindSerial
	KindSyscon
	KindStorage
	KindPointer
	KindKeyboard
	KindFramebuffer
	KindNetwork
	KindRTC
)

var kindNames = map[Kind]string{
	KindRAM:         "ram",
	KindCoreTimer:   "clint",
	KindDistributor: "plic",
	KindBus:         "pci",
	KindSerial:      "uart",
	KindSyscon:      "syscon",
	KindStorage:     "nvme",
	KindPointer:     "mouse",
	KindKeyboard:    "keyboard",
	KindFramebuffer: "framebuffer",
	KindNetwork:     "net",
	KindRTC:         "rtc",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// requires returns the kinds that must be placed before k.
func (k Kind) requires() []Kind {
	switch k {
	case KindBus, KindSerial, KindPointer, KindKeyboard, KindNetwork, KindRTC:
		return []Kind{KindDistributor}
	case KindStorage:
		return []Kind{KindBus}
	case KindFramebuffer:
		return []Kind{KindPointer, KindKeyboard}
	default:
		return nil
	}
}

// hasWindow reports whether the component occupies addresses of its own.
// Storage lives behind the bus.
func (k Kind) hasWindow() bool {
	return k != KindStorage
}

// Component is a single entry of a [Descriptor].
type Component struct {
	Kind   Kind
	Name   string
	Window core.Window
	IRQs   int
}

// Descriptor is the ordered list of components of a machine.
type Descriptor []Component

// Plan returns the [Descriptor] for the given configuration in build order.
func Plan(cfg config.VMConfig, layout Layout) Descriptor {
	add := func(d Descriptor, kind Kind, win core.Window, irqs int) Descriptor {
		return append(d, Component{
			Kind:   kind,
			Name:   kind.String(),
			Window: win,
			IRQs:   irqs,
		})
	}

	desc := Descriptor{}
	desc = add(desc, KindRAM, core.Window{Base: layout.RAMBase, Size: cfg.Memory}, 0)
	desc = add(desc, KindCoreTimer, layout.CoreTimer, 0)
	desc = add(desc, KindDistributor, layout.Distributor, 0)
	desc = add(desc, KindBus, layout.Bus, 4)
	desc = add(desc, KindSerial, layout.Serial, 1)
	desc = add(desc, KindSyscon, layout.Syscon, 0)

	if cfg.Image != "" {
		desc = add(desc, KindStorage, core.Window{}, 0)
	}

	if feature.Framebuffer && !cfg.NoGUI {
		fb := core.Window{
			Base: layout.FramebufferBase,
			Size: framebufferSize(cfg.Resolution),
		}

		desc = add(desc, KindPointer, layout.Pointer, 1)
		desc = add(desc, KindKeyboard, layout.Keyboard, 1)
		desc = add(desc, KindFramebuffer, fb, 0)
	}

	if feature.Network {
		desc = add(desc, KindNetwork, layout.Network, 1)
	}

	if feature.RTC {
		desc = add(desc, KindRTC, layout.RTC, 1)
	}

	return desc
}

// framebufferSize returns the size of the pixel buffer. It saturates at the
// maximum instead of wrapping, so oversized buffers fail validation.
func framebufferSize(res config.Resolution) uint64 {
	hi, lo := bits.Mul64(uint64(res.Width)*uint64(res.Height), FramebufferBPP)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// Has reports whether a component of the given kind is part of the
// descriptor.
func (d Descriptor) Has(kind Kind) bool {
	for _, c := range d {
		if c.Kind == kind {
			return true
		}
	}

	return false
}

// Validate checks windows and build order of all components.
func (d Descriptor) Validate() error {
	placed := make(map[Kind]bool, len(d))

	for idx, c := range d {
		if placed[c.Kind] {
			return fmt.Errorf("%w: %s", ErrDuplicateComponent, c.Name)
		}

		for _, req := range c.Kind.requires() {
			if !placed[req] {
				return fmt.Errorf("%w: %s requires %s before", ErrDependency, c.Name, req)
			}
		}

		placed[c.Kind] = true

		if !c.Kind.hasWindow() {
			continue
		}

		if c.Window.Size == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyWindow, c.Name)
		}

		if c.Window.Wraps() {
			return fmt.Errorf("%w: %s base %#x size %#x", ErrWindowOverflow,
				c.Name, c.Window.Base, c.Window.Size)
		}

		for _, other := range d[:idx] {
			if other.Kind.hasWindow() && c.Window.Overlaps(other.Window) {
				return fmt.Errorf("%w: %s %s and %s %s", ErrWindowOverlap,
					other.Name, other.Window, c.Name, c.Window)
			}
		}
	}

	return nil
}
