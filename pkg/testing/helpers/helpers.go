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

// Package helpers provides shared test setup: temp configs and in-memory
// game databases.
package helpers

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/GantryProject/gantry-core/pkg/database/gamesdb"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing.
func NewMemoryFS() *FSHelper {
	return &FSHelper{Fs: afero.NewMemMapFs()}
}

// WriteFile writes a file, creating parent directories as needed.
func (h *FSHelper) WriteFile(path string, data []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := afero.WriteFile(h.Fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// NewTestConfig creates a config instance backed by a temp directory with
// default values saved to disk.
func NewTestConfig(t *testing.T) *config.Instance {
	t.Helper()
	cfg, err := config.NewConfig(t.TempDir(), config.BaseDefaults)
	if err != nil {
		t.Fatalf("failed to create test config: %s", err)
	}
	return cfg
}

// OpenTestGamesDB opens a fresh games database in a temp directory.
func OpenTestGamesDB(t *testing.T) *gamesdb.GamesDB {
	t.Helper()
	db, err := gamesdb.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test games db: %s", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// OpenTestGamesDBWithClock opens a fresh games database using a fake clock.
func OpenTestGamesDBWithClock(t *testing.T, clock clockwork.Clock) *gamesdb.GamesDB {
	t.Helper()
	db, err := gamesdb.OpenWithClock(t.TempDir(), clock)
	if err != nil {
		t.Fatalf("failed to open test games db: %s", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
