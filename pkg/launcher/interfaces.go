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

package launcher

import (
	"context"

	"github.com/GantryProject/gantry-core/pkg/database"
)

// Installer is one installer candidate offered for a game.
type Installer struct {
	GameSlug string `json:"game_slug"`
	Version  string `json:"version"`
	Runner   string `json:"runner"`
	Slug     string `json:"slug"`
}

// InstallerDiscovery finds installer candidates for a game slug, a local
// installer file, or a pinned revision.
type InstallerDiscovery interface {
	Find(ctx context.Context, gameSlug, installerFile, revision string) ([]Installer, error)
}

// GameLauncher starts a resolved game. It owns all failure reporting for
// the launch itself.
type GameLauncher interface {
	Launch(ctx context.Context, game *database.Game) error
}

// ServiceInstaller installs a storefront's own game, returning the id of
// the local library entry it produced (0 when none).
type ServiceInstaller interface {
	Install(ctx context.Context, sg *database.ServiceGame) (int64, error)
}

// ServiceRegistry maps enabled service names to their installers.
type ServiceRegistry interface {
	Get(name string) (ServiceInstaller, bool)
}

// Downloader fetches a remote installer file into a directory and returns
// the local path.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) (string, error)
}

// PromptChoice is the user's answer to the install-or-play question.
type PromptChoice string

const (
	PromptPlay    PromptChoice = "play"
	PromptInstall PromptChoice = "install"
)

// Prompter asks the user what to do with an installed game when no action
// was explicit. ok is false when the prompt was dismissed unconfirmed.
type Prompter interface {
	InstallOrPlay(gameName string) (choice PromptChoice, ok bool)
}

// Runtime executes an arbitrary command within the launcher runtime.
type Runtime interface {
	Exec(ctx context.Context, command string) error
}

// StaticServices is a fixed name-to-installer table satisfying
// ServiceRegistry.
type StaticServices map[string]ServiceInstaller

func (s StaticServices) Get(name string) (ServiceInstaller, bool) {
	installer, ok := s[name]
	return installer, ok
}
