// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aibor/rvrun/internal/feature"
)

type arity int

const (
	// Switches never take a value, even if the next argument does not look
	// like an option.
	arityNone arity = iota
	// Options that take a value, either with "=" or as next argument.
	arityValue
)

type option struct {
	names    []string
	arity    arity
	apply    func(p *parser, value string) error
	synopsis string
	usage    string
	enabled  bool
}

func (o *option) name() string {
	return o.names[0]
}

func (o *option) matches(name string) bool {
	return slices.Contains(o.names, name)
}

// optionTable returns the known options in lookup and usage order.
func optionTable() []option {
	return []option{
		{
			names:    []string{"mem"},
			arity:    arityValue,
			apply:    (*parser).setMemory,
			synopsis: "-mem <amount>",
			usage:    "Memory amount, default: 256M",
			enabled:  true,
		},
		{
			names:    []string{"smp"},
			arity:    arityValue,
			apply:    (*parser).setCores,
			synopsis: "-smp <count>",
			usage:    "Cores count, default: 1",
			enabled:  true,
		},
		{
			names:    []string{"rv64"},
			arity:    arityNone,
			apply:    (*parser).setRV64,
			synopsis: "-rv64",
			usage:    "Enable 64-bit RISC-V, 32-bit by default",
			enabled:  feature.RV64,
		},
		{
			names:    []string{"kernel"},
			arity:    arityValue,
			apply:    (*parser).setKernel,
			synopsis: "-kernel <file>",
			usage:    "Load kernel Image as SBI payload",
			enabled:  true,
		},
		{
			names:    []string{"image"},
			arity:    arityValue,
			apply:    (*parser).setImage,
			synopsis: "-image <file>",
			usage:    "Attach hard drive with raw image",
			enabled:  true,
		},
		{
			names:    []string{"res"},
			arity:    arityValue,
			apply:    (*parser).setResolution,
			synopsis: "-res 1280x720",
			usage:    "Change framebuffer resolution",
			enabled:  feature.Framebuffer,
		},
		{
			names:    []string{"nogui"},
			arity:    arityNone,
			apply:    (*parser).setNoGUI,
			synopsis: "-nogui",
			usage:    "Disable framebuffer & mouse/keyboard",
			enabled:  feature.Framebuffer,
		},
		{
			names:    []string{"nettap"},
			arity:    arityValue,
			apply:    (*parser).setNetTap,
			synopsis: "-nettap <ifname>",
			usage:    "Attach network adapter to host TAP interface",
			enabled:  feature.Network,
		},
		{
			names:    []string{"dtb"},
			arity:    arityValue,
			apply:    (*parser).setDTB,
			synopsis: "-dtb <file>",
			usage:    "Pass custom DTB to the machine",
			enabled:  true,
		},
		{
			names:    []string{"dumpdtb"},
			arity:    arityValue,
			apply:    (*parser).setDumpDTB,
			synopsis: "-dumpdtb <file>",
			usage:    "Dump autogenerated DTB to file",
			enabled:  feature.FDTDump,
		},
		{
			names:    []string{"qemubin"},
			arity:    arityValue,
			apply:    (*parser).setQemuBinary,
			synopsis: "-qemubin <file>",
			usage:    "QEMU binary to use, default: qemu-system-riscv*",
			enabled:  true,
		},
		{
			names:    []string{"verbose"},
			arity:    arityNone,
			apply:    (*parser).setVerbose,
			synopsis: "-verbose",
			usage:    "Enable verbose logging",
			enabled:  true,
		},
		{
			names:    []string{"version"},
			arity:    arityNone,
			apply:    (*parser).printVersion,
			synopsis: "-version",
			usage:    "Show version and exit",
			enabled:  true,
		},
		{
			names:    []string{"help", "h", "H"},
			arity:    arityNone,
			apply:    (*parser).printHelp,
			synopsis: "-help",
			usage:    "Show this help message",
			enabled:  true,
		},
		{
			names:    []string{"bootrom"},
			arity:    arityValue,
			apply:    (*parser).setBootrom,
			synopsis: "[bootrom]",
			usage:    "Machine bootrom (SBI, BBL, etc)",
			enabled:  true,
		},
	}
}

// keepDefault logs that a malformed value is ignored.
func keepDefault(name, value string, err error) {
	slog.Warn("Ignoring malformed value, keeping default",
		slog.String("option", name),
		slog.String("value", value),
		slog.Any("error", err),
	)
}

func (p *parser) setMemory(value string) error {
	// An empty value keeps the current amount.
	if value == "" {
		return nil
	}

	size, err := ParseMemSize(value)
	if err != nil || size == 0 {
		keepDefault("mem", value, err)
		return nil
	}

	p.args.VM.Memory = size

	return nil
}

func (p *parser) setCores(value string) error {
	cores, err := ParseCount(value, 1, CoresMax)
	if err != nil {
		keepDefault("smp", value, err)
		return nil
	}

	p.args.VM.Cores = cores

	return nil
}

func (p *parser) setResolution(value string) error {
	res, err := ParseResolution(value)
	if err != nil {
		if errors.Is(err, ErrResolutionSeparator) {
			return &ArgumentError{Option: "res", Value: value, Err: err}
		}

		keepDefault("res", value, err)

		return nil
	}

	p.args.VM.Resolution = res

	return nil
}

func (p *parser) setRV64(string) error {
	p.args.VM.RV64 = true
	return nil
}

func (p *parser) setNoGUI(string) error {
	p.args.VM.NoGUI = true
	return nil
}

func (p *parser) setKernel(value string) error {
	p.args.VM.Kernel = value
	return nil
}

func (p *parser) setImage(value string) error {
	p.args.VM.Image = value
	return nil
}

func (p *parser) setNetTap(value string) error {
	p.args.VM.NetTap = value
	return nil
}

func (p *parser) setDTB(value string) error {
	p.args.VM.DTB = value
	return nil
}

func (p *parser) setDumpDTB(value string) error {
	p.args.VM.DumpDTB = value
	return nil
}

func (p *parser) setBootrom(value string) error {
	p.args.VM.Bootrom = value
	return nil
}

func (p *parser) setQemuBinary(value string) error {
	p.args.QemuBinary = value
	return nil
}

func (p *parser) setVerbose(string) error {
	p.args.Verbose = true
	return nil
}

func (p *parser) printHelp(string) error {
	p.usage()
	return ErrHelp
}

func (p *parser) printVersion(string) error {
	fmt.Fprintf(p.output, "%s %s\n", Name, version())

	return ErrHelp
}
