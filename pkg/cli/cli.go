// Gantry
// Copyright (c) 2026 The Gantry Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Gantry.
//
// Gantry is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gantry is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gantry.  If not, see <http://www.gnu.org/licenses/>.

// Package cli defines the launcher's command line surface and its
// plain-text and JSON output forms.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/GantryProject/gantry-core/pkg/config"
)

// Flags are the parsed command line options of one invocation.
type Flags struct {
	Install          *string
	OutputScript     *string
	Exec             *string
	Version          *bool
	Debug            *bool
	ListGames        *bool
	Installed        *bool
	JSON             *bool
	ListSteamGames   *bool
	ListSteamFolders *bool
	Reinstall        *bool
	SubmitIssue      *bool
}

// SetupFlags defines all CLI flags. Call flag.Parse after, or use Pre.
func SetupFlags() *Flags {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		_, _ = fmt.Fprintf(out, "Usage: %s [flags] [URI]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(out,
			"Run a game directly with the URI %s:rungame/game-identifier.\n"+
				"If several games share the same identifier you can use the numerical ID\n"+
				"(displayed when running -list-games) with %s:rungameid/numerical-id.\n"+
				"To install a game, use %s:install/game-identifier.\n\n",
			config.URIScheme, config.URIScheme, config.URIScheme)
		flag.PrintDefaults()
	}

	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print the version and exit",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"show debug messages",
		),
		Install: flag.String(
			"install",
			"",
			"install a game from a yml file or url",
		),
		OutputScript: flag.String(
			"output-script",
			"",
			"generate a shell script to run a game without the client",
		),
		Exec: flag.String(
			"exec",
			"",
			"execute a program within the launcher runtime",
		),
		ListGames: flag.Bool(
			"list-games",
			false,
			"list all games in the database",
		),
		Installed: flag.Bool(
			"installed",
			false,
			"only list installed games",
		),
		JSON: flag.Bool(
			"json",
			false,
			"display the list of games in JSON format",
		),
		ListSteamGames: flag.Bool(
			"list-steam-games",
			false,
			"list available Steam games",
		),
		ListSteamFolders: flag.Bool(
			"list-steam-folders",
			false,
			"list all known Steam library folders",
		),
		Reinstall: flag.Bool(
			"reinstall",
			false,
			"reinstall game",
		),
		SubmitIssue: flag.Bool(
			"submit-issue",
			false,
			"submit an issue",
		),
	}
}

// Pre runs flag parsing and actions immediate flags that don't require
// environment setup.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("%s-%s\n", config.AppName, config.AppVersion)
		os.Exit(0)
	}
}

// URI returns the trailing positional URI argument, if any.
func (*Flags) URI() string {
	return flag.Arg(0)
}
