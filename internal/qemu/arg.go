// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a QEMU argument with an optional comma separated value.
//
// Unique arguments may be used only once per command. Repeatable arguments
// like "-device" may be used multiple times, but never with the same value.
type Argument struct {
	name       string
	opts       []string
	repeatable bool
}

// UniqueArg returns a new [Argument] that can be used once per command.
func UniqueArg(name string, opts ...string) Argument {
	return Argument{name: name, opts: opts}
}

// RepeatableArg returns a new [Argument] that can be used multiple times per
// command with different values.
func RepeatableArg(name string, opts ...string) Argument {
	return Argument{name: name, opts: opts, repeatable: true}
}

// Name returns the name of the [Argument].
func (a Argument) Name() string {
	return a.name
}

// Value returns the comma joined options of the [Argument].
func (a Argument) Value() string {
	return strings.Join(a.opts, ",")
}

// Option returns the value of the first "key=value" option with the given
// key.
func (a Argument) Option(key string) (string, bool) {
	for _, opt := range a.opts {
		k, v, found := strings.Cut(opt, "=")
		if found && k == key {
			return v, true
		}
	}

	return "", false
}

// With returns a copy of the [Argument] with the given options appended.
func (a Argument) With(opts ...string) Argument {
	a.opts = append(slices.Clip(a.opts), opts...)
	return a
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	if len(a.opts) == 0 {
		return "-" + a.name
	}

	return "-" + a.name + " " + a.Value()
}

// collides reports whether both arguments must not be used together.
func (a Argument) collides(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.repeatable && other.repeatable {
		return a.Value() == other.Value()
	}

	return true
}

// BuildArgumentStrings compiles the [Argument]s into a slice of strings which
// can be used with [exec.Command].
//
// It returns [ErrArgumentCollision] if an unique argument is used more than
// once or a repeatable one is used twice with the same value.
func BuildArgumentStrings(args []Argument) ([]string, error) {
	strs := make([]string, 0, 2*len(args))

	for idx, arg := range args {
		if i := slices.IndexFunc(args[:idx], arg.collides); i != -1 {
			return nil, fmt.Errorf("%w: %s, %s",
				ErrArgumentCollision, args[i], arg)
		}

		strs = append(strs, "-"+arg.name)

		if len(arg.opts) > 0 {
			strs = append(strs, arg.Value())
		}
	}

	return strs, nil
}
