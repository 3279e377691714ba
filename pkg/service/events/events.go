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

// Package events is the typed lifecycle event bus. Listeners are registered
// per event kind and invoked synchronously in registration order; there is
// no cancellation and every listener always runs.
package events

import (
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// Kind is one game lifecycle transition.
type Kind string

const (
	Install Kind = "game-install"
	Launch  Kind = "game-launch"
	Start   Kind = "game-start"
	Stop    Kind = "game-stop"
)

// Event carries the affected game through the bus.
type Event struct {
	Game *database.Game
	Kind Kind
}

// Listener handles one event. Listeners must not re-enter the bus with an
// Emit for the same game identity.
type Listener func(Event)

// Bus dispatches lifecycle events to per-kind listener lists.
type Bus struct {
	listeners map[Kind][]Listener
	mu        syncutil.RWMutex
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind][]Listener)}
}

// Subscribe appends a listener for the given kind. Dispatch order is
// registration order.
func (b *Bus) Subscribe(kind Kind, fn Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[kind] = append(b.listeners[kind], fn)
}

// Emit invokes every listener registered for the kind, in order, on the
// calling goroutine. Listeners are invoked outside the bus lock.
func (b *Bus) Emit(kind Kind, game *database.Game) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners[kind]))
	copy(listeners, b.listeners[kind])
	b.mu.RUnlock()

	log.Debug().Msgf("emitting %s for %s", kind, game.Identity())
	event := Event{Kind: kind, Game: game}
	for _, fn := range listeners {
		fn(event)
	}
}
