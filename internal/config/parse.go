// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"io"
	"log/slog"
	"strings"
)

type parser struct {
	name    string
	output  io.Writer
	options []option
	args    Args
}

// Parse parses the given command line arguments, without the program name,
// into [Args].
//
// Usage and version output is written to output. Name is used as program
// name in usage output. If help or version was requested, [ErrHelp] is
// returned. If no bootrom is given, the short usage line is printed and
// [ErrNoBootrom] is returned.
func Parse(name string, args []string, output io.Writer) (Args, error) {
	p := &parser{
		name:    name,
		output:  output,
		options: optionTable(),
		args: Args{
			VM: DefaultVMConfig(),
		},
	}

	if err := p.parse(args); err != nil {
		return Args{}, err
	}

	if p.args.VM.Bootrom == "" {
		p.shortUsage()
		return Args{}, ErrNoBootrom
	}

	return p.args, nil
}

func (p *parser) parse(args []string) error {
	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]

		if !isOption(arg) {
			if err := p.setBootrom(arg); err != nil {
				return err
			}

			continue
		}

		name, value, hasValue := splitOption(arg)
		opt := p.lookup(name)

		// Unknown options keep the value-or-flag lookahead, so the next
		// argument is skipped as their value.
		takesValue := opt == nil || opt.arity == arityValue
		if takesValue && !hasValue && idx+1 < len(args) && !isOption(args[idx+1]) {
			idx++
			value = args[idx]
		}

		if opt == nil {
			slog.Warn("Ignoring unknown option", slog.String("option", name))
			continue
		}

		if !opt.enabled {
			slog.Warn("Option not available in this build",
				slog.String("option", name))

			continue
		}

		if err := opt.apply(p, value); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) lookup(name string) *option {
	for idx := range p.options {
		if p.options[idx].matches(name) {
			return &p.options[idx]
		}
	}

	return nil
}

func isOption(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

// splitOption strips one or two leading dashes and splits on the first "=".
func splitOption(arg string) (string, string, bool) {
	arg = strings.TrimPrefix(arg, "-")
	arg = strings.TrimPrefix(arg, "-")

	return strings.Cut(arg, "=")
}
