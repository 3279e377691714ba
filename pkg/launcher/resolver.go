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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/rs/zerolog/log"
)

// Options are the resolution-relevant CLI flags of one invocation.
type Options struct {
	InstallFile  string
	OutputScript string
	Reinstall    bool
}

// Directive is the outcome of action resolution: what to do, with which
// game, and how. It is consumed by the application dispatch step.
type Directive struct {
	Game          *database.Game
	Action        Action
	GameSlug      string
	Revision      string
	Service       string
	AppID         string
	InstallerFile string
	OutputScript  string
	// Background suppresses window presentation for this invocation only.
	Background bool
}

// Resolver applies the action precedence rules to one invocation.
type Resolver struct {
	Games      database.GameLookup
	Downloader Downloader
	Prompter   Prompter
	// DownloadDir is where remote installer files are fetched to.
	DownloadDir string
}

// Resolve decides the final action for an invocation. Purely informational
// flags short-circuit before this is called. The rules, in order:
//
//  1. An output script path forces write-script.
//  2. An installer file forces install, even over write-script, downloading
//     it first if remote.
//  3. The game is looked up by the identity forms the URI action allows.
//  4. The reinstall flag overrides everything decided so far with install.
//  5. With no action but an installed game, the user is asked; with no
//     game but a slug, file or service, install is the default.
//
// A failed lookup is not fatal here. It surfaces at dispatch.
func (r *Resolver) Resolve(ctx context.Context, opts Options, info InstallerInfo) (Directive, error) {
	directive := Directive{
		Action:       info.Action,
		GameSlug:     info.GameSlug,
		Revision:     info.Revision,
		Service:      info.Service,
		AppID:        info.AppID,
		OutputScript: opts.OutputScript,
	}

	if opts.OutputScript != "" {
		directive.Action = ActionWriteScript
	}

	if opts.InstallFile != "" {
		installerFile, err := r.resolveInstallerFile(ctx, opts.InstallFile)
		if err != nil {
			return Directive{}, err
		}
		directive.InstallerFile = installerFile
		directive.Action = ActionInstall
	}

	if info.GameSlug != "" && info.Service == "" {
		game, background, err := r.lookupGame(ctx, info)
		if err != nil {
			return Directive{}, err
		}
		directive.Game = game
		directive.Background = background
	}

	// The reinstall flag wins over any action decided above.
	if opts.Reinstall {
		directive.Action = ActionInstall
	}

	if directive.Action == ActionNone {
		r.resolveDefaultAction(&directive)
	}

	return directive, nil
}

func (r *Resolver) resolveInstallerFile(ctx context.Context, installerFile string) (string, error) {
	if strings.HasPrefix(installerFile, "http:") || strings.HasPrefix(installerFile, "https:") {
		log.Info().Msgf("downloading installer file %s", installerFile)
		localPath, err := r.Downloader.Download(ctx, installerFile, r.DownloadDir)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %s", ErrDownload, installerFile, err)
		}
		installerFile = localPath
	} else {
		abs, err := filepath.Abs(installerFile)
		if err != nil {
			return "", fmt.Errorf("failed to resolve installer file path: %w", err)
		}
		installerFile = abs
	}

	fi, err := os.Stat(installerFile)
	if err != nil || fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrMissingFile, installerFile)
	}
	return installerFile, nil
}

// lookupGame resolves the URI identifier to a library game using the
// identity forms the action allows, tried in order.
func (r *Resolver) lookupGame(ctx context.Context, info InstallerInfo) (game *database.Game, background bool, err error) {
	switch info.Action {
	case ActionRunGameByID:
		// Force lookup by numeric game id
		game, err = firstMatch(ctx, r.Games, info.GameSlug, lookupByID)
		background = true
	case ActionRunGame:
		// Force lookup by game slug
		game, err = firstMatch(ctx, r.Games, info.GameSlug, lookupBySlug)
		background = true
	case ActionInstall:
		// Installers can use game or installer slugs
		game, err = firstMatch(ctx, r.Games, info.GameSlug,
			lookupBySlug, lookupByInstallerSlug)
		background = true
	default:
		// No explicit action, try anything that might work
		game, err = firstMatch(ctx, r.Games, info.GameSlug,
			lookupByID, lookupBySlug, lookupByInstallerSlug)
	}
	if err != nil {
		return nil, false, fmt.Errorf("game lookup failed: %w", err)
	}
	return game, background, nil
}

func (r *Resolver) resolveDefaultAction(directive *Directive) {
	if directive.Game != nil && directive.Game.Installed {
		// Game found but no action provided, ask what to do
		choice, ok := r.Prompter.InstallOrPlay(directive.Game.Name)
		switch {
		case !ok:
		case choice == PromptPlay:
			directive.Action = ActionRunGame
		case choice == PromptInstall:
			directive.Action = ActionInstall
		}
		return
	}
	if directive.GameSlug != "" || directive.InstallerFile != "" || directive.Service != "" {
		// No game found, install is the only thing that can make one
		directive.Action = ActionInstall
	}
}
