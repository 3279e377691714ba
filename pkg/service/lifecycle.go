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

// Package service drives installed and running games through their
// lifecycle transitions and keeps the running set consistent.
package service

import (
	"context"
	"fmt"

	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/GantryProject/gantry-core/pkg/service/events"
	"github.com/GantryProject/gantry-core/pkg/service/state"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Library is the game store surface the lifecycle consumes: lookups plus
// play session stamps.
type Library interface {
	database.GameLookup
	TouchLastPlayed(ctx context.Context, id int64) error
}

// UI is the narrow surface of the window layer the lifecycle needs.
type UI interface {
	ShowMain()
	HideMain()
	MainVisible() bool
	Quit()
	ShowError(msg string)
	ShowInstaller(installers []launcher.Installer, service, appID string)
}

// Lifecycle reacts to game lifecycle events: it delegates installs,
// launches games, and tracks the running set. One instance subscribes to
// the process-wide bus.
type Lifecycle struct {
	cfg       *config.Instance
	st        *state.State
	bus       *events.Bus
	games     Library
	services  database.ServiceLookup
	registry  launcher.ServiceRegistry
	discovery launcher.InstallerDiscovery
	launcher  launcher.GameLauncher
	ui        UI
	ctx       context.Context
}

func NewLifecycle(
	ctx context.Context,
	cfg *config.Instance,
	st *state.State,
	bus *events.Bus,
	games Library,
	services database.ServiceLookup,
	registry launcher.ServiceRegistry,
	discovery launcher.InstallerDiscovery,
	gameLauncher launcher.GameLauncher,
	ui UI,
) *Lifecycle {
	return &Lifecycle{
		ctx:       ctx,
		cfg:       cfg,
		st:        st,
		bus:       bus,
		games:     games,
		services:  services,
		registry:  registry,
		discovery: discovery,
		launcher:  gameLauncher,
		ui:        ui,
	}
}

// Attach subscribes the lifecycle handlers to the bus. Call once.
func (l *Lifecycle) Attach() {
	l.bus.Subscribe(events.Install, func(e events.Event) {
		if err := l.OnInstallRequested(e.Game); err != nil {
			log.Error().Stack().Err(errors.WithStack(err)).Msg("install request failed")
			l.ui.ShowError(err.Error())
		}
	})
	l.bus.Subscribe(events.Launch, func(e events.Event) {
		l.OnLaunch(e.Game)
	})
	l.bus.Subscribe(events.Start, func(e events.Event) {
		l.OnStart(e.Game)
	})
	l.bus.Subscribe(events.Stop, func(e events.Event) {
		l.OnStop(e.Game)
	})
}

// OnInstallRequested handles a request to install a game. Games belonging
// to a remote service are delegated to that service's installer and
// launched on success; local games go through installer discovery.
func (l *Lifecycle) OnInstallRequested(game *database.Game) error {
	if game == nil || !game.HasIdentity() {
		return fmt.Errorf("invalid game passed: %+v", game)
	}

	if game.Service != "" && game.Service != config.LocalService {
		l.serviceInstall(game)
		return nil
	}

	if game.Slug == "" {
		return fmt.Errorf("invalid game passed: %s", game.Identity())
	}

	installers, err := l.discovery.Find(l.ctx, game.Slug, "", "")
	if err != nil {
		return fmt.Errorf("installer discovery failed: %w", err)
	}
	if len(installers) == 0 {
		l.ui.ShowError(fmt.Sprintf("There is no installer available for %s.", game.Name))
		return nil
	}
	l.ui.ShowInstaller(installers, "", "")
	return nil
}

// serviceInstall hands installation to the owning service. A service
// install error is logged and swallowed: the invocation continues
// degraded, with no launch.
func (l *Lifecycle) serviceInstall(game *database.Game) {
	installer, ok := l.registry.Get(game.Service)
	if !ok {
		log.Warn().Msgf("service %s is not enabled", game.Service)
		return
	}

	sg, err := l.services.ServiceGame(l.ctx, game.Service, game.AppID)
	if err != nil {
		log.Debug().Err(err).Msgf("service game lookup failed for %s:%s", game.Service, game.AppID)
		return
	}

	var gameID int64
	gameID, err = installer.Install(l.ctx, sg)
	if err != nil {
		log.Debug().Err(err).Msgf("service install failed for %s:%s", game.Service, game.AppID)
		gameID = 0
	}

	if gameID == 0 {
		return
	}

	installed, err := l.games.GameByID(l.ctx, gameID)
	if err != nil || installed == nil {
		log.Warn().Err(err).Msgf("service install produced unknown game id %d", gameID)
		return
	}
	l.bus.Emit(events.Launch, installed)
}

// OnLaunch invokes the launch capability. The launch owns its own failure
// reporting, so this always counts as handled.
func (l *Lifecycle) OnLaunch(game *database.Game) {
	if err := l.launcher.Launch(l.ctx, game); err != nil {
		log.Debug().Err(err).Msgf("launch reported error for %s", game.Identity())
	}
}

// OnStart tracks a started game. Starting an already tracked identity
// leaves the set unchanged.
func (l *Lifecycle) OnStart(game *database.Game) {
	if !l.st.AddRunning(game) {
		log.Debug().Msgf("%s already in running set", game.Identity())
		return
	}
	l.st.Notify(state.NotificationGameStarted, game.Identity())
	if l.cfg.HideOnGameStart() {
		l.ui.HideMain()
	}
}

// OnStop removes a stopped game from the running set and stamps its last
// played time. The stop notification goes out after removal so subscribers
// observe a consistent set. When nothing is running and the main window is
// hidden, the application terminates.
func (l *Lifecycle) OnStop(game *database.Game) {
	identity := game.Identity()
	if !l.st.RemoveRunning(identity) {
		log.Warn().Msgf("%s not in running set %v", identity, l.st.RunningIdentities())
	}

	if game.ID != 0 {
		if err := l.games.TouchLastPlayed(l.ctx, game.ID); err != nil {
			log.Warn().Err(err).Msgf("failed to stamp last played for %s", identity)
		}
	}

	l.st.Notify(state.NotificationGameStopped, identity)

	if l.cfg.HideOnGameStart() {
		l.ui.ShowMain()
		return
	}
	if !l.ui.MainVisible() && l.st.NumRunning() == 0 {
		l.ui.Quit()
	}
}
