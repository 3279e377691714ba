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
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRunScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run-quake.sh")
	err := WriteRunScript(&database.Game{
		ID:        7,
		Slug:      "quake",
		Name:      "Quake",
		Runner:    "wine",
		Directory: "/games/quake",
	}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	script := string(data)
	assert.Contains(t, script, "#!/bin/sh")
	assert.Contains(t, script, `cd "/games/quake" || exit 1`)
	assert.Contains(t, script, `exec wine "quake"`)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	}
}

func TestWriteRunScriptRequiresGame(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.sh")
	assert.Error(t, WriteRunScript(nil, path))
	assert.Error(t, WriteRunScript(&database.Game{Slug: "quake"}, path))
	assert.NoFileExists(t, path)
}
