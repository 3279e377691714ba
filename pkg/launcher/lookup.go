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
	"strconv"

	"github.com/GantryProject/gantry-core/pkg/database"
)

// A lookupStrategy tries to resolve one identity form to a library game.
// A miss is (nil, nil).
type lookupStrategy func(ctx context.Context, games database.GameLookup, key string) (*database.Game, error)

func lookupByID(ctx context.Context, games database.GameLookup, key string) (*database.Game, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return nil, nil //nolint:nilnil // non-numeric key is a miss, not an error
	}
	return games.GameByID(ctx, id)
}

func lookupBySlug(ctx context.Context, games database.GameLookup, key string) (*database.Game, error) {
	return games.GameBySlug(ctx, key)
}

func lookupByInstallerSlug(ctx context.Context, games database.GameLookup, key string) (*database.Game, error) {
	return games.GameByInstallerSlug(ctx, key)
}

// firstMatch tries each strategy in order and returns the first hit. All
// strategies missing is not an error.
func firstMatch(
	ctx context.Context,
	games database.GameLookup,
	key string,
	strategies ...lookupStrategy,
) (*database.Game, error) {
	for _, strategy := range strategies {
		game, err := strategy(ctx, games, key)
		if err != nil {
			return nil, err
		}
		if game != nil {
			return game, nil
		}
	}
	return nil, nil //nolint:nilnil // lookup miss is a valid outcome
}
