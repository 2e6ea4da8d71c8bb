// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"

	"github.com/aibor/rvrun/internal/core"
)

// Highest interrupt source of the virt machine PLIC. Source 0 is reserved.
const plicMaxSource core.IRQ = 95

type plic struct {
	last core.IRQ
}

// AllocIRQ implements [core.Distributor].
func (p *plic) AllocIRQ() (core.IRQ, error) {
	if p.last >= plicMaxSource {
		return 0, fmt.Errorf("%w: %d in use", ErrIRQExhausted, p.last)
	}

	p.last++

	return p.last, nil
}

type pciBus struct {
	window core.Window
	irqs   []core.IRQ
}

// Window implements [core.Bus].
func (b *pciBus) Window() core.Window {
	return b.window
}

type inputDevice struct {
	kind core.InputKind
	irq  core.IRQ
}

// Kind implements [core.InputDevice].
func (d *inputDevice) Kind() core.InputKind {
	return d.kind
}

// IRQ implements [core.InputDevice].
func (d *inputDevice) IRQ() core.IRQ {
	return d.irq
}
