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

package gamesdb_test

import (
	"testing"
	"time"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/testing/helpers"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGameAssignsID(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	added, err := db.AddGame(t.Context(), &database.Game{
		Slug:          "quake",
		Name:          "Quake",
		Runner:        "wine",
		InstallerSlug: "quake-gog",
		Installed:     true,
	})
	require.NoError(t, err)
	assert.Positive(t, added.ID)

	byID, err := db.GameByID(t.Context(), added.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Quake", byID.Name)

	bySlug, err := db.GameBySlug(t.Context(), "quake")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, added.ID, bySlug.ID)

	byInstaller, err := db.GameByInstallerSlug(t.Context(), "quake-gog")
	require.NoError(t, err)
	require.NotNil(t, byInstaller)
	assert.Equal(t, added.ID, byInstaller.ID)
}

func TestLookupMissReturnsNilNil(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	game, err := db.GameByID(t.Context(), 404)
	require.NoError(t, err)
	assert.Nil(t, game)

	game, err = db.GameBySlug(t.Context(), "missing")
	require.NoError(t, err)
	assert.Nil(t, game)

	game, err = db.GameByInstallerSlug(t.Context(), "missing")
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestListGamesFiltersInstalled(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	_, err := db.AddGame(t.Context(), &database.Game{Slug: "quake", Name: "Quake", Installed: true})
	require.NoError(t, err)
	_, err = db.AddGame(t.Context(), &database.Game{Slug: "doom", Name: "Doom"})
	require.NoError(t, err)

	all, err := db.ListGames(t.Context(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	installed, err := db.ListGames(t.Context(), true)
	require.NoError(t, err)
	require.Len(t, installed, 1)
	assert.Equal(t, "quake", installed[0].Slug)
}

func TestTouchLastPlayedUsesClock(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(when)
	db := helpers.OpenTestGamesDBWithClock(t, clock)

	added, err := db.AddGame(t.Context(), &database.Game{Slug: "quake", Name: "Quake"})
	require.NoError(t, err)

	require.NoError(t, db.TouchLastPlayed(t.Context(), added.ID))

	got, err := db.GameByID(t.Context(), added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, when.Unix(), got.LastPlayed)
}

func TestAddPlaytimeAccumulates(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	added, err := db.AddGame(t.Context(), &database.Game{Slug: "quake", Name: "Quake"})
	require.NoError(t, err)

	require.NoError(t, db.AddPlaytime(t.Context(), added.ID, 1.5))
	require.NoError(t, db.AddPlaytime(t.Context(), added.ID, 0.5))

	got, err := db.GameByID(t.Context(), added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 2.0, got.Playtime, 0.001)
}

func TestSetInstalled(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	added, err := db.AddGame(t.Context(), &database.Game{Slug: "quake", Name: "Quake"})
	require.NoError(t, err)
	require.NoError(t, db.SetInstalled(t.Context(), added.ID, true))

	got, err := db.GameByID(t.Context(), added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Installed)
}

func TestServiceGameUpsert(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	sg := &database.ServiceGame{Service: "gog", AppID: "1207658924", Name: "Quake", Slug: "quake"}
	require.NoError(t, db.AddServiceGame(t.Context(), sg))

	// Re-adding the same (service, app id) updates in place.
	sg.Name = "Quake (1996)"
	require.NoError(t, db.AddServiceGame(t.Context(), sg))

	got, err := db.ServiceGame(t.Context(), "gog", "1207658924")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Quake (1996)", got.Name)

	miss, err := db.ServiceGame(t.Context(), "gog", "0")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestTruncateEmptiesLibrary(t *testing.T) {
	t.Parallel()
	db := helpers.OpenTestGamesDB(t)

	_, err := db.AddGame(t.Context(), &database.Game{Slug: "quake", Name: "Quake"})
	require.NoError(t, err)
	require.NoError(t, db.Truncate(t.Context()))

	games, err := db.ListGames(t.Context(), false)
	require.NoError(t, err)
	assert.Empty(t, games)
}
