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

package ui

import (
	"github.com/GantryProject/gantry-core/pkg/ui/windows"
	"github.com/rs/zerolog/log"
)

// InertWindow is a window handle with no toolkit behind it. It stands in
// for real windows when the process runs without a display, so singleton
// bookkeeping still works.
type InertWindow struct {
	kind windows.Kind
}

func (w *InertWindow) Present() {
	log.Debug().Msgf("presenting %s window", w.kind)
}

func (w *InertWindow) Show() {
	log.Debug().Msgf("showing %s window", w.kind)
}

// InertFactory returns a window factory producing InertWindows of the
// given kind.
func InertFactory(kind windows.Kind) windows.Factory {
	return func(_ windows.ShowArgs, _ func()) (windows.Handle, error) {
		return &InertWindow{kind: kind}, nil
	}
}
