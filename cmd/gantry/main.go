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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GantryProject/gantry-core/pkg/app"
	"github.com/GantryProject/gantry-core/pkg/cli"
	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/database/gamesdb"
	"github.com/GantryProject/gantry-core/pkg/helpers"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/GantryProject/gantry-core/pkg/platforms/steam"
	"github.com/GantryProject/gantry-core/pkg/service/events"
	"github.com/GantryProject/gantry-core/pkg/shared/httpclient"
	"github.com/GantryProject/gantry-core/pkg/ui"
	"github.com/GantryProject/gantry-core/pkg/ui/windows"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := cli.SetupFlags()
	flags.Pre()

	// Log to stderr as well when invoked with any command line work to do.
	var extraWriters []io.Writer
	if len(os.Args) > 1 {
		extraWriters = append(extraWriters, os.Stderr)
	}
	if err := helpers.InitLogging(extraWriters); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	if os.Geteuid() == 0 {
		log.Warn().Msg("running as root is not recommended and may cause unexpected issues")
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if cfg.DebugLogging() {
		helpers.SetDebugLogging(true)
	}

	db, err := gamesdb.Open(helpers.DataDir())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing games database")
		}
	}()
	if err := db.MigrateUp(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(ctx, app.Deps{
		Cfg:       cfg,
		Library:   db,
		Services:  launcher.StaticServices{},
		Discovery: noDiscovery{},
		NewLauncher: func(bus *events.Bus) launcher.GameLauncher {
			return &execLauncher{bus: bus, runtime: launcher.ExecRuntime{}}
		},
		Runtime:    launcher.ExecRuntime{},
		Prompter:   stdinPrompter{},
		Download:   httpclient.NewClient(),
		Steam:      steam.DefaultScanner(),
		Stdout:     os.Stdout,
		OnShutdown: cancel,
	})

	for _, kind := range []windows.Kind{
		windows.KindMain, windows.KindInstaller, windows.KindIssueReport,
	} {
		a.Windows().RegisterFactory(kind, ui.InertFactory(kind))
	}

	return a.CommandLine(ctx, flags, flags.URI())
}

// stdinPrompter asks the install-or-play question on the terminal.
type stdinPrompter struct{}

func (stdinPrompter) InstallOrPlay(gameName string) (launcher.PromptChoice, bool) {
	_, _ = fmt.Printf("%s is already installed. Launch it, or install again? [play/install] ", gameName)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "play", "p":
		return launcher.PromptPlay, true
	case "install", "i":
		return launcher.PromptInstall, true
	default:
		return "", false
	}
}

// noDiscovery is installer discovery with no remote source configured. A
// local installer file still yields a single candidate.
type noDiscovery struct{}

func (noDiscovery) Find(_ context.Context, gameSlug, installerFile, _ string) ([]launcher.Installer, error) {
	if installerFile == "" {
		return nil, nil
	}
	slug := gameSlug
	if slug == "" {
		slug = strings.TrimSuffix(installerFile, ".yml")
	}
	return []launcher.Installer{{GameSlug: slug, Slug: slug + "-local"}}, nil
}

// execLauncher runs a game's directory entrypoint and emits start/stop
// transitions around it.
type execLauncher struct {
	bus     *events.Bus
	runtime launcher.Runtime
}

func (l *execLauncher) Launch(ctx context.Context, game *database.Game) error {
	l.bus.Emit(events.Start, game)
	defer l.bus.Emit(events.Stop, game)

	command := game.Directory
	if command == "" {
		return fmt.Errorf("game %s has no directory to launch from", game.Identity())
	}
	if err := l.runtime.Exec(ctx, command); err != nil {
		return fmt.Errorf("game exited with error: %w", err)
	}
	return nil
}
