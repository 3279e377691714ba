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

package gamesdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNullSQL = errors.New("GamesDB is not connected")

const sqliteConnParams = "?_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000"

// GamesDB is the sqlite-backed game library. It implements
// database.GameLookup and database.ServiceLookup.
type GamesDB struct {
	sql     *sql.DB
	clock   clockwork.Clock
	dataDir string
}

// Open opens (and allocates, if missing) the library database under dataDir.
func Open(dataDir string) (*GamesDB, error) {
	db := &GamesDB{dataDir: dataDir, clock: clockwork.NewRealClock()}
	err := db.open()
	return db, err
}

// OpenWithClock is Open with an injected clock, used in tests to control
// last played timestamps.
func OpenWithClock(dataDir string, clock clockwork.Clock) (*GamesDB, error) {
	db := &GamesDB{dataDir: dataDir, clock: clock}
	err := db.open()
	return db, err
}

func (db *GamesDB) open() error {
	exists := true
	dbPath := db.Path()
	_, err := os.Stat(dbPath)
	if err != nil {
		exists = false
		mkdirErr := os.MkdirAll(filepath.Dir(dbPath), 0o750)
		if mkdirErr != nil {
			return fmt.Errorf("failed to create directory for database: %w", mkdirErr)
		}
	}
	sqlInstance, err := sql.Open("sqlite3", dbPath+sqliteConnParams)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.sql = sqlInstance
	if !exists {
		return db.Allocate()
	}
	return nil
}

func (db *GamesDB) Path() string {
	return filepath.Join(db.dataDir, config.GamesDbFile)
}

func (db *GamesDB) Allocate() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlMigrateUp(db.sql)
}

func (db *GamesDB) MigrateUp() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlMigrateUp(db.sql)
}

func (db *GamesDB) Close() error {
	if db.sql == nil {
		return nil
	}
	if err := db.sql.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.sql = nil
	return nil
}

// AddGame inserts a game and returns it with its assigned id.
func (db *GamesDB) AddGame(ctx context.Context, game *database.Game) (*database.Game, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlAddGame(ctx, db.sql, game)
}

func (db *GamesDB) UpdateGame(ctx context.Context, game *database.Game) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlUpdateGame(ctx, db.sql, game)
}

func (db *GamesDB) GameByID(ctx context.Context, id int64) (*database.Game, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlGameByField(ctx, db.sql, "DBID", id)
}

func (db *GamesDB) GameBySlug(ctx context.Context, slug string) (*database.Game, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlGameByField(ctx, db.sql, "Slug", slug)
}

func (db *GamesDB) GameByInstallerSlug(ctx context.Context, slug string) (*database.Game, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlGameByField(ctx, db.sql, "InstallerSlug", slug)
}

// ListGames returns all games in insertion order, optionally filtered to
// installed ones.
func (db *GamesDB) ListGames(ctx context.Context, installedOnly bool) ([]database.Game, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlListGames(ctx, db.sql, installedOnly)
}

// TouchLastPlayed stamps a game's last played time with the current clock.
func (db *GamesDB) TouchLastPlayed(ctx context.Context, id int64) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlTouchLastPlayed(ctx, db.sql, id, db.clock.Now().Unix())
}

// AddPlaytime accumulates played hours onto a game.
func (db *GamesDB) AddPlaytime(ctx context.Context, id int64, hours float64) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlAddPlaytime(ctx, db.sql, id, hours)
}

func (db *GamesDB) SetInstalled(ctx context.Context, id int64, installed bool) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlSetInstalled(ctx, db.sql, id, installed)
}

// AddServiceGame upserts a remote storefront catalog entry.
func (db *GamesDB) AddServiceGame(ctx context.Context, sg *database.ServiceGame) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlAddServiceGame(ctx, db.sql, sg)
}

func (db *GamesDB) ServiceGame(ctx context.Context, service, appID string) (*database.ServiceGame, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlServiceGame(ctx, db.sql, service, appID)
}

// Truncate clears all library content. Used by tests and reimports.
func (db *GamesDB) Truncate(ctx context.Context) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlTruncate(ctx, db.sql)
}
