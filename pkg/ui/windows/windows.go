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

// Package windows guarantees singleton semantics for application windows:
// at most one live instance exists per (kind, key) at any time.
package windows

import (
	"fmt"
	"strconv"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/helpers/syncutil"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/rs/zerolog/log"
)

// Kind tags the window variant a request is for.
type Kind string

const (
	KindMain        Kind = "main"
	KindInstaller   Kind = "installer"
	KindIssueReport Kind = "issue-report"
)

// Handle is a live window instance. Present re-raises an existing window;
// Show makes a newly constructed one visible.
type Handle interface {
	Present()
	Show()
}

// ShowArgs are the constructor arguments for a window request. The derived
// registry key comes from these, in precedence order: explicit app id,
// runner name, first installer's game slug, game id, then a stable string
// form of everything as a fallback.
type ShowArgs struct {
	Game       *database.Game
	AppID      string
	Runner     string
	Service    string
	Installers []launcher.Installer
}

// Factory constructs a window. The release callback must be invoked when
// the window is destroyed; calling it more than once is tolerated.
type Factory func(args ShowArgs, release func()) (Handle, error)

// Registry maps (kind, key) to at most one live window.
type Registry struct {
	factories map[Kind]Factory
	windows   map[string]Handle
	mu        syncutil.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Kind]Factory),
		windows:   make(map[string]Handle),
	}
}

// RegisterFactory installs the constructor for a window kind.
func (r *Registry) RegisterFactory(kind Kind, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// Show returns the live window for (kind, derived key), constructing one
// only if none exists. An existing window is re-presented; constructor
// side effects run at most once per key per liveness period.
func (r *Registry) Show(kind Kind, args ShowArgs) (Handle, error) {
	key := string(kind) + deriveKey(args)

	r.mu.Lock()
	if existing, ok := r.windows[key]; ok {
		r.mu.Unlock()
		existing.Present()
		return existing, nil
	}
	factory, ok := r.factories[kind]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no factory registered for window kind %s", kind)
	}

	window, err := factory(args, func() { r.release(key) })
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s window: %w", kind, err)
	}

	r.mu.Lock()
	r.windows[key] = window
	r.mu.Unlock()

	log.Debug().Msgf("showing window %s", key)
	window.Show()
	return window, nil
}

// Open reports whether a live window exists for (kind, args).
func (r *Registry) Open(kind Kind, args ShowArgs) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.windows[string(kind)+deriveKey(args)]
	return ok
}

// release removes the entry for a destroyed window. Destruction may be
// signalled more than once; removal happens exactly once, later attempts
// only warn.
func (r *Registry) release(key string) {
	r.mu.Lock()
	_, ok := r.windows[key]
	if ok {
		delete(r.windows, key)
	}
	open := make([]string, 0, len(r.windows))
	for k := range r.windows {
		open = append(open, k)
	}
	r.mu.Unlock()

	if ok {
		log.Debug().Msgf("removed window %s", key)
	} else {
		log.Warn().Msgf("failed to remove window %s", key)
		log.Info().Msgf("available windows: %v", open)
	}
}

func deriveKey(args ShowArgs) string {
	switch {
	case args.AppID != "":
		return args.AppID
	case args.Runner != "":
		return args.Runner
	case len(args.Installers) > 0:
		return args.Installers[0].GameSlug
	case args.Game != nil:
		return strconv.FormatInt(args.Game.ID, 10)
	default:
		// Fallback avoids accidental aliasing between unrelated requests.
		return fmt.Sprintf("%+v", args)
	}
}
