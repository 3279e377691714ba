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

// Package app is the action resolution and game lifecycle orchestrator: it
// turns one invocation (flags plus optional URI) into a single canonical
// action and drives it to a terminal outcome.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/GantryProject/gantry-core/pkg/cli"
	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/helpers"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/GantryProject/gantry-core/pkg/platforms/steam"
	"github.com/GantryProject/gantry-core/pkg/service"
	"github.com/GantryProject/gantry-core/pkg/service/events"
	"github.com/GantryProject/gantry-core/pkg/service/state"
	"github.com/GantryProject/gantry-core/pkg/ui"
	"github.com/GantryProject/gantry-core/pkg/ui/windows"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Library is the game database surface the orchestrator consumes.
type Library interface {
	database.GameLookup
	database.ServiceLookup
	ListGames(ctx context.Context, installedOnly bool) ([]database.Game, error)
	TouchLastPlayed(ctx context.Context, id int64) error
}

// Deps are the collaborators one App instance coordinates.
type Deps struct {
	Cfg       *config.Instance
	Library   Library
	Services  launcher.ServiceRegistry
	Discovery launcher.InstallerDiscovery
	// NewLauncher builds the launch capability. It receives the event bus
	// so launches can emit start/stop transitions.
	NewLauncher func(bus *events.Bus) launcher.GameLauncher
	Runtime     launcher.Runtime
	Prompter    launcher.Prompter
	Download    launcher.Downloader
	// Steam reads local Steam installs for the Steam listings.
	Steam *steam.Scanner
	// Stdout receives list output. Defaults to os.Stdout in cmd.
	Stdout io.Writer
	// OnShutdown runs when the whole application begins shutdown.
	OnShutdown func()
}

// App owns the per-process registries and dispatches invocations.
type App struct {
	deps      Deps
	st        *state.State
	bus       *events.Bus
	windows   *windows.Registry
	presenter *ui.Presenter
	lifecycle *service.Lifecycle
	resolver  *launcher.Resolver
	// Notifications surfaces lifecycle messages to tray/UI subscribers.
	Notifications <-chan state.Notification
}

func New(ctx context.Context, deps Deps) *App {
	st, ns := state.New(uuid.NewString())
	bus := events.NewBus()
	registry := windows.NewRegistry()

	a := &App{
		deps:          deps,
		st:            st,
		bus:           bus,
		windows:       registry,
		Notifications: ns,
	}
	a.presenter = ui.NewPresenter(registry, a.Shutdown)

	gameLauncher := deps.NewLauncher(bus)
	a.lifecycle = service.NewLifecycle(
		ctx,
		deps.Cfg,
		st,
		bus,
		deps.Library,
		deps.Library,
		deps.Services,
		deps.Discovery,
		gameLauncher,
		a.presenter,
	)
	a.lifecycle.Attach()

	a.resolver = &launcher.Resolver{
		Games:       deps.Library,
		Downloader:  deps.Download,
		Prompter:    deps.Prompter,
		DownloadDir: deps.Cfg.InstallCacheDir(),
	}

	log.Debug().Msgf("invocation %s", st.InvocationID())
	return a
}

// Bus exposes the lifecycle event bus for collaborators that emit game
// transitions (process monitors, installers).
func (a *App) Bus() *events.Bus {
	return a.bus
}

// State exposes the running set for tray and UI components.
func (a *App) State() *state.State {
	return a.st
}

// Windows exposes the singleton window registry so features can register
// factories and request windows.
func (a *App) Windows() *windows.Registry {
	return a.windows
}

// Presenter exposes main window visibility control.
func (a *App) Presenter() *ui.Presenter {
	return a.presenter
}

// CommandLine handles one invocation and returns its exit code: 0 on
// handled completion, 1 on resolution failure.
//
//nolint:gocyclo // mirrors the flat precedence rules of the CLI surface
func (a *App) CommandLine(ctx context.Context, flags *cli.Flags, uri string) int {
	if *flags.Debug {
		a.deps.Cfg.SetDebugLogging(true)
		helpers.SetDebugLogging(true)
	}

	if *flags.Version {
		_, _ = fmt.Fprintf(a.deps.Stdout, "%s-%s\n", config.AppName, config.AppVersion)
		return 0
	}

	// Text only commands

	if *flags.ListGames {
		games, err := a.deps.Library.ListGames(ctx, *flags.Installed)
		if err != nil {
			log.Error().Err(err).Msg("failed to list games")
			return 1
		}
		if *flags.JSON {
			if err := cli.PrintGameJSON(a.deps.Stdout, games); err != nil {
				log.Error().Err(err).Msg("failed to print game list")
				return 1
			}
		} else if err := cli.PrintGameList(a.deps.Stdout, games); err != nil {
			log.Error().Err(err).Msg("failed to print game list")
			return 1
		}
		return 0
	}

	if *flags.ListSteamGames {
		if err := cli.PrintSteamGames(a.deps.Stdout, a.deps.Steam, a.deps.Steam.AllAppsDirs()); err != nil {
			log.Error().Err(err).Msg("failed to print steam games")
			return 1
		}
		return 0
	}

	if *flags.ListSteamFolders {
		if err := cli.PrintSteamFolders(a.deps.Stdout, a.deps.Steam.AllAppsDirs()); err != nil {
			log.Error().Err(err).Msg("failed to print steam folders")
			return 1
		}
		return 0
	}

	if *flags.Exec != "" {
		if err := a.deps.Runtime.Exec(ctx, *flags.Exec); err != nil {
			log.Error().Err(err).Msg("exec failed")
		}
		return 0
	}

	if *flags.SubmitIssue {
		a.presenter.ShowIssueReport()
		return 0
	}

	info, err := launcher.ParseInstallerURI(uri)
	if err != nil {
		_, _ = fmt.Fprintf(a.deps.Stdout, "%s is not a valid URI\n", uri)
		return 1
	}

	directive, err := a.resolver.Resolve(ctx, launcher.Options{
		InstallFile:  *flags.Install,
		OutputScript: *flags.OutputScript,
		Reinstall:    *flags.Reinstall,
	}, info)
	if err != nil {
		_, _ = fmt.Fprintln(a.deps.Stdout, err.Error())
		return 1
	}

	if directive.Action == launcher.ActionWriteScript {
		return a.writeScript(&directive)
	}

	// Graphical commands
	if directive.Background {
		a.st.SetRunInBackground(true)
	}
	a.activate()
	a.presenter.SetTrayVisible(a.deps.Cfg.ShowTrayIcon())

	if directive.Service != "" {
		handled, code := a.serviceHandoff(ctx, &directive)
		if handled {
			return code
		}
	}

	return a.dispatch(ctx, &directive)
}

// activate presents the main window unless this invocation requested
// background mode, which resets after the check.
func (a *App) activate() {
	if a.st.ConsumeRunInBackground() {
		return
	}
	a.presenter.PresentMain()
}

func (a *App) writeScript(directive *launcher.Directive) int {
	if directive.Game == nil || directive.Game.ID == 0 {
		log.Warn().Msg("no game provided to generate the script")
		return 1
	}
	if err := launcher.WriteRunScript(directive.Game, directive.OutputScript); err != nil {
		log.Error().Err(err).Msg("failed to generate script")
		return 1
	}
	return 0
}

// serviceHandoff looks up the remote catalog entry for (service, appid)
// and, when found, hands installation to that service's own installer. No
// further local dispatch happens for the invocation.
func (a *App) serviceHandoff(ctx context.Context, directive *launcher.Directive) (handled bool, code int) {
	sg, err := a.deps.Library.ServiceGame(ctx, directive.Service, directive.AppID)
	if err != nil {
		log.Error().Err(err).Msgf("service game lookup failed for %s:%s",
			directive.Service, directive.AppID)
		return true, 1
	}
	if sg == nil {
		return false, 0
	}

	installer, ok := a.deps.Services.Get(directive.Service)
	if !ok {
		log.Warn().Msgf("service %s is not enabled", directive.Service)
		return true, 0
	}
	if _, err := installer.Install(ctx, sg); err != nil {
		log.Debug().Err(err).Msgf("service install failed for %s:%s",
			directive.Service, directive.AppID)
	}
	return true, 0
}

func (a *App) dispatch(ctx context.Context, directive *launcher.Directive) int {
	switch directive.Action {
	case launcher.ActionInstall:
		installers, err := a.deps.Discovery.Find(ctx,
			directive.GameSlug, directive.InstallerFile, directive.Revision)
		if err != nil {
			log.Error().Err(err).Msg("installer discovery failed")
			a.presenter.ShowError(err.Error())
			return 1
		}
		if len(installers) > 0 {
			a.presenter.ShowInstaller(installers, directive.Service, directive.AppID)
		}

	case launcher.ActionRunGame, launcher.ActionRunGameByID:
		if directive.Game == nil || directive.Game.ID == 0 {
			log.Warn().Msg("no game found in library")
			if !a.presenter.MainVisible() {
				a.Shutdown()
			}
			return 0
		}
		a.bus.Emit(events.Launch, directive.Game)

	case launcher.ActionNone:
		// Nothing resolved: the main window is already presented.
	}
	return 0
}

// Shutdown begins application termination.
func (a *App) Shutdown() {
	log.Info().Msg("shutting down")
	if a.deps.OnShutdown != nil {
		a.deps.OnShutdown()
	}
}
