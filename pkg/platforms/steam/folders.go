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

package steam

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// LibraryFolders reads every Steam library folder path out of a steamapps
// directory's libraryfolders.vdf. The result is sorted for stable output.
func (s *Scanner) LibraryFolders(steamAppsDir string) []string {
	f, err := s.fs.Open(filepath.Join(steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msgf("error opening libraryfolders.vdf in %s", steamAppsDir)
		return nil
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Error().Err(err).Msg("error parsing libraryfolders.vdf")
		return nil
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Error().Msg("libraryfolders is not a map")
		return nil
	}

	var folders []string
	for id, v := range lfs {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		path, ok := entry["path"].(string)
		if !ok {
			log.Debug().Msgf("library %s has no path", id)
			continue
		}
		folders = append(folders, filepath.Join(path, "steamapps"))
	}
	sort.Strings(folders)
	return folders
}

// DefaultAppsDirs returns the steamapps directories of known Steam install
// locations that exist on this machine.
func (s *Scanner) DefaultAppsDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debug().Err(err).Msg("failed to get home dir")
		return nil
	}

	candidates := []string{
		filepath.Join(home, ".steam", "steam", "steamapps"),
		filepath.Join(home, ".local", "share", "Steam", "steamapps"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam",
			".local", "share", "Steam", "steamapps"),
	}

	var dirs []string
	for _, dir := range candidates {
		if fi, err := s.fs.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// AllAppsDirs expands the default install locations with every extra
// library folder they reference.
func (s *Scanner) AllAppsDirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	add := func(dir string) {
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	for _, dir := range s.DefaultAppsDirs() {
		add(dir)
		for _, folder := range s.LibraryFolders(dir) {
			add(folder)
		}
	}
	return dirs
}
