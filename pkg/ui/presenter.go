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

// Package ui is the boundary to the window toolkit. Rendering is external;
// this package only coordinates which windows exist and whether the main
// window is presented.
package ui

import (
	"github.com/GantryProject/gantry-core/pkg/helpers/syncutil"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/GantryProject/gantry-core/pkg/ui/windows"
	"github.com/rs/zerolog/log"
)

// Presenter tracks main window visibility and opens singleton windows
// through the registry. The actual toolkit windows are provided by the
// registered window factories.
type Presenter struct {
	registry *windows.Registry
	onQuit   func()
	tray     bool
	visible  bool
	mu       syncutil.RWMutex
}

func NewPresenter(registry *windows.Registry, onQuit func()) *Presenter {
	return &Presenter{registry: registry, onQuit: onQuit}
}

// PresentMain shows (or re-raises) the main window.
func (p *Presenter) PresentMain() {
	p.mu.Lock()
	p.visible = true
	p.mu.Unlock()
	if _, err := p.registry.Show(windows.KindMain, windows.ShowArgs{Runner: "main"}); err != nil {
		log.Error().Err(err).Msg("failed to present main window")
	}
}

func (p *Presenter) ShowMain() {
	p.mu.Lock()
	p.visible = true
	p.mu.Unlock()
}

func (p *Presenter) HideMain() {
	p.mu.Lock()
	p.visible = false
	p.mu.Unlock()
}

func (p *Presenter) MainVisible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible
}

// SetTrayVisible creates or hides the tray icon presence.
func (p *Presenter) SetTrayVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if visible && !p.tray {
		log.Debug().Msg("creating tray icon")
	}
	p.tray = visible
}

func (p *Presenter) TrayVisible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tray
}

func (p *Presenter) Quit() {
	if p.onQuit != nil {
		p.onQuit()
	}
}

func (p *Presenter) ShowError(msg string) {
	log.Error().Msg(msg)
}

// ShowInstaller opens the singleton install window for the candidates.
func (p *Presenter) ShowInstaller(installers []launcher.Installer, service, appID string) {
	args := windows.ShowArgs{
		Installers: installers,
		Service:    service,
		AppID:      appID,
	}
	if _, err := p.registry.Show(windows.KindInstaller, args); err != nil {
		log.Error().Err(err).Msg("failed to show installer window")
	}
}

// ShowIssueReport opens the singleton issue report window.
func (p *Presenter) ShowIssueReport() {
	if _, err := p.registry.Show(windows.KindIssueReport, windows.ShowArgs{Runner: "issue-report"}); err != nil {
		log.Error().Err(err).Msg("failed to show issue report window")
	}
}
