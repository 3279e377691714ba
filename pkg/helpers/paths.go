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

package helpers

import (
	"path/filepath"

	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/adrg/xdg"
)

// DataDir is where the game database and runtime files live.
func DataDir() string {
	return filepath.Join(xdg.DataHome, config.AppName)
}

// ConfigDir is where config.toml and auth.toml live.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// CacheDir is where logs and downloaded installer files live.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, config.AppName)
}
