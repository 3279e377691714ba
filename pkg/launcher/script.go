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
	"fmt"
	"os"
	"strings"

	"github.com/GantryProject/gantry-core/pkg/database"
)

// WriteRunScript writes a shell script that launches the game without the
// client.
func WriteRunScript(game *database.Game, path string) error {
	if game == nil || game.ID == 0 {
		return fmt.Errorf("cannot write script: no game resolved")
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString(fmt.Sprintf("# Run %s without the Gantry client\n", game.Name))
	if game.Directory != "" {
		b.WriteString(fmt.Sprintf("cd %q || exit 1\n", game.Directory))
	}
	runner := game.Runner
	if runner == "" {
		runner = "gantry"
	}
	b.WriteString(fmt.Sprintf("exec %s %q\n", runner, game.Slug))

	//nolint:gosec // script is meant to be executable by the user
	if err := os.WriteFile(path, []byte(b.String()), 0o750); err != nil {
		return fmt.Errorf("failed to write run script: %w", err)
	}
	return nil
}
