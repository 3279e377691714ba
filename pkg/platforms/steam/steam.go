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

// Package steam reads game metadata out of local Steam installs: app
// manifests and library folder config.
package steam

import (
	"github.com/spf13/afero"
)

// Scanner reads Steam library metadata from a filesystem.
type Scanner struct {
	fs afero.Fs
}

func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// DefaultScanner reads from the real filesystem.
func DefaultScanner() *Scanner {
	return NewScanner(afero.NewOsFs())
}
