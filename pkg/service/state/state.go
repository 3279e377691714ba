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

package state

import (
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/helpers/syncutil"
)

// Notification is a message fanned out to UI and tray subscribers.
type Notification struct {
	Params any    `json:"params,omitempty"`
	Method string `json:"method"`
}

const (
	NotificationGameStarted = "game.started"
	NotificationGameStopped = "game.stopped"
)

// State holds the runtime state of the launcher.
//
// LOCKING RULES: The mu mutex protects all mutable fields. To prevent
// deadlocks:
//   - Never send to channels while holding the lock
//   - Never call listeners or hooks while holding the lock
//   - Pattern: lock → modify state → copy needed data → unlock → notify
type State struct {
	Notifications   chan<- Notification
	running         []*database.Game
	invocationID    string
	mu              syncutil.RWMutex
	runInBackground bool
}

// New creates runtime state and returns the notification stream consumers
// subscribe to. invocationID tags log lines of one activation.
func New(invocationID string) (st *State, notificationCh <-chan Notification) {
	// Buffered so lifecycle transitions never block on a slow subscriber.
	ns := make(chan Notification, 100)
	return &State{
		Notifications: ns,
		invocationID:  invocationID,
	}, ns
}

func (s *State) InvocationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invocationID
}

// SetRunInBackground suppresses window presentation for the next
// activation only.
func (s *State) SetRunInBackground(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runInBackground = enabled
}

// ConsumeRunInBackground reports whether background mode is set and resets
// it, so future activations present windows again.
func (s *State) ConsumeRunInBackground() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	background := s.runInBackground
	s.runInBackground = false
	return background
}

// AddRunning inserts a game into the running set, keyed by identity.
// Returns false without modifying the set when the identity is already
// tracked.
func (s *State) AddRunning(game *database.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity := game.Identity()
	for _, g := range s.running {
		if g.Identity() == identity {
			return false
		}
	}
	s.running = append(s.running, game)
	return true
}

// RemoveRunning removes the game with the given identity from the running
// set. Returns false when the identity was not tracked.
func (s *State) RemoveRunning(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.running {
		if g.Identity() == identity {
			s.running = append(s.running[:i], s.running[i+1:]...)
			return true
		}
	}
	return false
}

// Running returns the running games in start order.
func (s *State) Running() []*database.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*database.Game, len(s.running))
	copy(games, s.running)
	return games
}

// RunningIdentities returns the identities of running games in start order.
func (s *State) RunningIdentities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.running))
	for _, g := range s.running {
		ids = append(ids, g.Identity())
	}
	return ids
}

// RunningByIdentity returns the tracked game with the given identity, or
// nil.
func (s *State) RunningByIdentity(identity string) *database.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.running {
		if g.Identity() == identity {
			return g
		}
	}
	return nil
}

// NumRunning returns the cardinality of the running set.
func (s *State) NumRunning() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.running)
}

// Notify posts a notification without blocking lifecycle processing. A
// full subscriber queue drops the message.
func (s *State) Notify(method string, params any) {
	select {
	case s.Notifications <- Notification{Method: method, Params: params}:
	default:
	}
}
