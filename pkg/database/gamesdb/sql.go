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
	"embed"
	"errors"
	"fmt"

	"github.com/GantryProject/gantry-core/pkg/database"
)

// Queries go here to keep the interface clean

//go:embed migrations/*.sql
var migrationFiles embed.FS

func sqlMigrateUp(db *sql.DB) error {
	if err := database.MigrateUp(db, migrationFiles, "migrations"); err != nil {
		return fmt.Errorf("failed to run games database migrations: %w", err)
	}
	return nil
}

//goland:noinspection SqlWithoutWhere
func sqlTruncate(ctx context.Context, db *sql.DB) error {
	sqlStmt := `
	delete from Games;
	delete from ServiceGames;
	vacuum;
	`
	_, err := db.ExecContext(ctx, sqlStmt)
	if err != nil {
		return fmt.Errorf("failed to truncate database: %w", err)
	}
	return nil
}

func sqlAddGame(ctx context.Context, db *sql.DB, game *database.Game) (*database.Game, error) {
	res, err := db.ExecContext(ctx, `
	INSERT INTO Games (
		Slug, Name, Runner, Platform, Year, Directory, Hidden,
		Installed, InstallerSlug, Service, AppID, Playtime, LastPlayed
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		game.Slug, game.Name, game.Runner, game.Platform, game.Year,
		game.Directory, game.Hidden, game.Installed, game.InstallerSlug,
		game.Service, game.AppID, game.Playtime, game.LastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted game id: %w", err)
	}
	inserted := *game
	inserted.ID = id
	return &inserted, nil
}

func sqlUpdateGame(ctx context.Context, db *sql.DB, game *database.Game) error {
	_, err := db.ExecContext(ctx, `
	UPDATE Games SET
		Slug = ?, Name = ?, Runner = ?, Platform = ?, Year = ?,
		Directory = ?, Hidden = ?, Installed = ?, InstallerSlug = ?,
		Service = ?, AppID = ?, Playtime = ?, LastPlayed = ?
	WHERE DBID = ?;`,
		game.Slug, game.Name, game.Runner, game.Platform, game.Year,
		game.Directory, game.Hidden, game.Installed, game.InstallerSlug,
		game.Service, game.AppID, game.Playtime, game.LastPlayed, game.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

func sqlGameByField(ctx context.Context, db *sql.DB, field string, value any) (*database.Game, error) {
	row := db.QueryRowContext(ctx, `
	SELECT
		DBID, Slug, Name, Runner, Platform, Year, Directory, Hidden,
		Installed, InstallerSlug, Service, AppID, Playtime, LastPlayed
	FROM Games WHERE `+field+` = ? LIMIT 1;`, value)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query game by %s: %w", field, err)
	}
	return game, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*database.Game, error) {
	var game database.Game
	err := row.Scan(
		&game.ID, &game.Slug, &game.Name, &game.Runner, &game.Platform,
		&game.Year, &game.Directory, &game.Hidden, &game.Installed,
		&game.InstallerSlug, &game.Service, &game.AppID, &game.Playtime,
		&game.LastPlayed,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck // callers add query context
	}
	return &game, nil
}

func sqlListGames(ctx context.Context, db *sql.DB, installedOnly bool) ([]database.Game, error) {
	query := `
	SELECT
		DBID, Slug, Name, Runner, Platform, Year, Directory, Hidden,
		Installed, InstallerSlug, Service, AppID, Playtime, LastPlayed
	FROM Games`
	if installedOnly {
		query += ` WHERE Installed = 1`
	}
	query += ` ORDER BY DBID;`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var games []database.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating game rows: %w", err)
	}
	return games, nil
}

func sqlTouchLastPlayed(ctx context.Context, db *sql.DB, id, when int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE Games SET LastPlayed = ? WHERE DBID = ?;`, when, id)
	if err != nil {
		return fmt.Errorf("failed to update last played: %w", err)
	}
	return nil
}

func sqlAddPlaytime(ctx context.Context, db *sql.DB, id int64, hours float64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE Games SET Playtime = Playtime + ? WHERE DBID = ?;`, hours, id)
	if err != nil {
		return fmt.Errorf("failed to update playtime: %w", err)
	}
	return nil
}

func sqlSetInstalled(ctx context.Context, db *sql.DB, id int64, installed bool) error {
	_, err := db.ExecContext(ctx,
		`UPDATE Games SET Installed = ? WHERE DBID = ?;`, installed, id)
	if err != nil {
		return fmt.Errorf("failed to update installed state: %w", err)
	}
	return nil
}

func sqlAddServiceGame(ctx context.Context, db *sql.DB, sg *database.ServiceGame) error {
	_, err := db.ExecContext(ctx, `
	INSERT INTO ServiceGames (Service, AppID, Name, Slug, Data)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (Service, AppID) DO UPDATE SET
		Name = excluded.Name, Slug = excluded.Slug, Data = excluded.Data;`,
		sg.Service, sg.AppID, sg.Name, sg.Slug, sg.Data,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert service game: %w", err)
	}
	return nil
}

func sqlServiceGame(ctx context.Context, db *sql.DB, service, appID string) (*database.ServiceGame, error) {
	row := db.QueryRowContext(ctx, `
	SELECT DBID, Service, AppID, Name, Slug, Data
	FROM ServiceGames WHERE Service = ? AND AppID = ? LIMIT 1;`,
		service, appID)

	var sg database.ServiceGame
	err := row.Scan(&sg.DBID, &sg.Service, &sg.AppID, &sg.Name, &sg.Slug, &sg.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query service game: %w", err)
	}
	return &sg, nil
}
