// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Name of the program as printed in the banner.
const Name = "rvrun"

const banner = `  ___  __   __  ___   _   _  _  _
 | _ \ \ \ / / | _ \ | | | || \| |
 |   /  \ V /  |   / | |_| || .  |
 |_|_\   \_/   |_|_\  \___/ |_|\_|

`

const license = `This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.
`

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "(devel)"
	}

	return buildInfo.Main.Version
}

// usage prints the full help text. Options disabled at build time are
// omitted.
func (p *parser) usage() {
	var out strings.Builder

	out.WriteString(banner)
	fmt.Fprintf(&out, "%s %s\n\n", Name, version())
	out.WriteString(license)
	fmt.Fprintf(&out, "\nUsage: %s [options] [bootrom]\n\n", p.name)

	width := 0

	for _, opt := range p.options {
		if opt.enabled && len(opt.synopsis) > width {
			width = len(opt.synopsis)
		}
	}

	for _, opt := range p.options {
		if !opt.enabled {
			continue
		}

		fmt.Fprintf(&out, "    %-*s  %s\n", width, opt.synopsis, opt.usage)
	}

	fmt.Fprint(p.output, out.String())
}

// shortUsage prints the one line invocation hint.
func (p *parser) shortUsage() {
	fmt.Fprintf(p.output,
		"Usage: %s [-help] [-mem 256M] [-rv64] [-image file.img] [bootrom]\n",
		p.name,
	)
}
