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

package database

import (
	"context"
	"fmt"
	"strconv"
)

// Game is a single entry in the local game library.
type Game struct {
	Slug          string  `db:"Slug"          json:"slug"`
	Name          string  `db:"Name"          json:"name"`
	Runner        string  `db:"Runner"        json:"runner"`
	Platform      string  `db:"Platform"      json:"platform"`
	Directory     string  `db:"Directory"     json:"directory"`
	InstallerSlug string  `db:"InstallerSlug" json:"installerSlug"`
	Service       string  `db:"Service"       json:"service"`
	AppID         string  `db:"AppID"         json:"appId"`
	ID            int64   `db:"DBID"          json:"id"`
	Year          int     `db:"Year"          json:"year"`
	Playtime      float64 `db:"Playtime"      json:"playtime"`
	LastPlayed    int64   `db:"LastPlayed"    json:"lastPlayed"`
	Hidden        bool    `db:"Hidden"        json:"hidden"`
	Installed     bool    `db:"Installed"     json:"installed"`
}

// Identity returns the stable key distinguishing one logical game: numeric
// id when known, else slug, else installer slug, else a key synthesized
// from whatever fields are present.
func (g *Game) Identity() string {
	switch {
	case g == nil:
		return ""
	case g.ID > 0:
		return strconv.FormatInt(g.ID, 10)
	case g.Slug != "":
		return g.Slug
	case g.InstallerSlug != "":
		return g.InstallerSlug
	case g.Service != "" || g.AppID != "":
		return fmt.Sprintf("%s:%s", g.Service, g.AppID)
	default:
		return g.Name
	}
}

// HasIdentity reports whether the game can be distinguished at all.
func (g *Game) HasIdentity() bool {
	return g.Identity() != ""
}

// ServiceGame is a remote storefront catalog entry for (service, appid).
type ServiceGame struct {
	Service string `db:"Service" json:"service"`
	AppID   string `db:"AppID"   json:"appId"`
	Name    string `db:"Name"    json:"name"`
	Slug    string `db:"Slug"    json:"slug"`
	Data    string `db:"Data"    json:"data"`
	DBID    int64  `db:"DBID"    json:"id"`
}

// GameLookup is the read surface of the game library consumed by action
// resolution. A miss is (nil, nil), not an error.
type GameLookup interface {
	GameByID(ctx context.Context, id int64) (*Game, error)
	GameBySlug(ctx context.Context, slug string) (*Game, error)
	GameByInstallerSlug(ctx context.Context, slug string) (*Game, error)
}

// ServiceLookup resolves remote storefront catalog entries.
type ServiceLookup interface {
	ServiceGame(ctx context.Context, service, appID string) (*ServiceGame, error)
}
