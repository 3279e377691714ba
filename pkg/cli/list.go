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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/platforms/steam"
)

// PrintGameList writes the fixed-width text listing of the game library.
func PrintGameList(w io.Writer, games []database.Game) error {
	for i := range games {
		game := &games[i]
		runner := game.Runner
		if runner == "" {
			runner = "-"
		}
		directory := game.Directory
		if directory == "" {
			directory = "-"
		}
		_, err := fmt.Fprintf(w, "%4d | %-40s | %-40s | %-15s | %-64s\n",
			game.ID,
			truncate(game.Name, 40),
			truncate(game.Slug, 40),
			runner,
			directory,
		)
		if err != nil {
			return fmt.Errorf("failed to write game list: %w", err)
		}
	}
	return nil
}

// jsonGame is the JSON list entry shape. Nullable fields use pointers so
// absent values render as null rather than zero values.
type jsonGame struct {
	Runner     *string `json:"runner"`
	Platform   *string `json:"platform"`
	Year       *int    `json:"year"`
	Directory  *string `json:"directory"`
	Playtime   *string `json:"playtime"`
	LastPlayed *string `json:"lastplayed"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	ID         int64   `json:"id"`
	Hidden     bool    `json:"hidden"`
}

// PrintGameJSON writes the library as indented JSON.
func PrintGameJSON(w io.Writer, games []database.Game) error {
	out := make([]jsonGame, 0, len(games))
	for i := range games {
		game := &games[i]
		entry := jsonGame{
			ID:        game.ID,
			Slug:      game.Slug,
			Name:      game.Name,
			Runner:    optString(game.Runner),
			Platform:  optString(game.Platform),
			Directory: optString(game.Directory),
			Hidden:    game.Hidden,
		}
		if game.Year != 0 {
			year := game.Year
			entry.Year = &year
		}
		if game.Playtime > 0 {
			playtime := FormatPlaytime(game.Playtime)
			entry.Playtime = &playtime
		}
		if game.LastPlayed > 0 {
			lastPlayed := time.Unix(game.LastPlayed, 0).Format("2006-01-02 15:04:05")
			entry.LastPlayed = &lastPlayed
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode game list: %w", err)
	}
	return nil
}

// FormatPlaytime renders played hours the way a time delta prints, e.g.
// 2.5 hours becomes "2:30:00" and 26 hours "1 day, 2:00:00".
func FormatPlaytime(hours float64) string {
	totalSeconds := int64(math.Round(hours * 3600))
	days := totalSeconds / 86400
	rem := totalSeconds % 86400
	h := rem / 3600
	m := (rem % 3600) / 60
	s := rem % 60

	clock := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	switch {
	case days == 1:
		return fmt.Sprintf("1 day, %s", clock)
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	default:
		return clock
	}
}

// PrintSteamGames writes the Steam app listing for every known steamapps
// directory.
func PrintSteamGames(w io.Writer, scanner *steam.Scanner, steamAppsDirs []string) error {
	for _, dir := range steamAppsDirs {
		for _, manifest := range scanner.ListAppManifests(dir) {
			name := manifest.Name
			if name == "" {
				name = "-"
			}
			_, err := fmt.Fprintf(w, " %8d | %-60s | %s\n",
				manifest.AppID,
				truncate(name, 60),
				strings.Join(manifest.States(), ", "),
			)
			if err != nil {
				return fmt.Errorf("failed to write steam game list: %w", err)
			}
		}
	}
	return nil
}

// PrintSteamFolders writes every known Steam library folder.
func PrintSteamFolders(w io.Writer, steamAppsDirs []string) error {
	for _, dir := range steamAppsDirs {
		if _, err := fmt.Fprintln(w, dir); err != nil {
			return fmt.Errorf("failed to write steam folder list: %w", err)
		}
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
