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
	"testing"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAddRunningRejectsDuplicateIdentity(t *testing.T) {
	st, _ := New("test")

	game := &database.Game{ID: 42, Slug: "quake"}
	assert.True(t, st.AddRunning(game))
	assert.False(t, st.AddRunning(game))
	assert.Equal(t, 1, st.NumRunning())

	// Same identity through a different struct is still a duplicate.
	assert.False(t, st.AddRunning(&database.Game{ID: 42}))
	assert.Equal(t, 1, st.NumRunning())
}

func TestRunningPreservesStartOrder(t *testing.T) {
	st, _ := New("test")

	st.AddRunning(&database.Game{ID: 3})
	st.AddRunning(&database.Game{ID: 1})
	st.AddRunning(&database.Game{ID: 2})

	assert.Equal(t, []string{"3", "1", "2"}, st.RunningIdentities())
}

func TestRemoveRunningAbsentIdentity(t *testing.T) {
	st, _ := New("test")
	st.AddRunning(&database.Game{ID: 1})

	assert.False(t, st.RemoveRunning("42"))
	assert.Equal(t, 1, st.NumRunning())

	assert.True(t, st.RemoveRunning("1"))
	assert.False(t, st.RemoveRunning("1"))
	assert.Equal(t, 0, st.NumRunning())
}

func TestRunningByIdentity(t *testing.T) {
	st, _ := New("test")
	game := &database.Game{ID: 7, Slug: "quake"}
	st.AddRunning(game)

	assert.Equal(t, game, st.RunningByIdentity("7"))
	assert.Nil(t, st.RunningByIdentity("quake"))
}

func TestConsumeRunInBackgroundResetsAfterUse(t *testing.T) {
	st, _ := New("test")

	assert.False(t, st.ConsumeRunInBackground())

	st.SetRunInBackground(true)
	assert.True(t, st.ConsumeRunInBackground())
	assert.False(t, st.ConsumeRunInBackground())
}

func TestNotifyNeverBlocks(t *testing.T) {
	st, _ := New("test")

	// No subscriber is draining; fill past the buffer.
	for range 200 {
		st.Notify(NotificationGameStarted, "1")
	}
}
