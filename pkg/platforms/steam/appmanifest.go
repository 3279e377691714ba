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
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// AppManifest is the subset of an appmanifest_*.acf file the listings use.
type AppManifest struct {
	Name       string
	InstallDir string
	AppID      int
	StateFlags int
}

// stateFlagNames maps StateFlags bits to their names, lowest bit first.
var stateFlagNames = []string{
	"Uninstalled",
	"Update Required",
	"Fully Installed",
	"Encrypted",
	"Locked",
	"Files Missing",
	"AppRunning",
	"Files Corrupt",
	"Update Running",
	"Update Paused",
	"Update Started",
	"Uninstalling",
	"Backup Running",
	"",
	"",
	"",
	"Reconfiguring",
	"Validating",
	"Adding Files",
	"Preallocating",
	"Downloading",
	"Staging",
	"Committing",
	"Update Stopping",
}

// States decodes StateFlags into its set state names.
func (m *AppManifest) States() []string {
	var states []string
	for i, name := range stateFlagNames {
		if name == "" {
			continue
		}
		if m.StateFlags&(1<<i) != 0 {
			states = append(states, name)
		}
	}
	return states
}

// ReadAppManifest reads one appmanifest_*.acf file.
func (s *Scanner) ReadAppManifest(path string) (AppManifest, bool) {
	f, err := s.fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Msgf("failed to open app manifest %s", path)
		return AppManifest{}, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing app manifest")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Warn().Err(err).Msgf("failed to parse app manifest %s", path)
		return AppManifest{}, false
	}
	m = normalizeVDFKeys(m)

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Warn().Msgf("AppState not found in manifest %s", path)
		return AppManifest{}, false
	}

	manifest := AppManifest{}
	if v, ok := appState["name"].(string); ok {
		manifest.Name = v
	}
	if v, ok := appState["installdir"].(string); ok {
		manifest.InstallDir = v
	}
	if v, ok := appState["appid"].(string); ok {
		manifest.AppID, _ = strconv.Atoi(v)
	}
	if v, ok := appState["stateflags"].(string); ok {
		manifest.StateFlags, _ = strconv.Atoi(v)
	}
	return manifest, true
}

// ListAppManifests reads every appmanifest in a steamapps directory,
// ordered by app id.
func (s *Scanner) ListAppManifests(steamAppsDir string) []AppManifest {
	entries, err := afero.ReadDir(s.fs, steamAppsDir)
	if err != nil {
		log.Debug().Err(err).Msgf("failed to read steamapps dir %s", steamAppsDir)
		return nil
	}

	var manifests []AppManifest
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "appmanifest_") ||
			!strings.HasSuffix(name, ".acf") {
			continue
		}
		manifest, ok := s.ReadAppManifest(filepath.Join(steamAppsDir, name))
		if !ok {
			continue
		}
		manifests = append(manifests, manifest)
	}
	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].AppID < manifests[j].AppID
	})
	return manifests
}

// normalizeVDFKeys lowercases map keys recursively. Steam is inconsistent
// about key casing between installs.
func normalizeVDFKeys(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		normalized[strings.ToLower(k)] = v
	}
	return normalized
}
