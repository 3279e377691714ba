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

package mocks

import (
	"github.com/GantryProject/gantry-core/pkg/launcher"
)

// FakeUI records window layer interactions for assertions.
type FakeUI struct {
	Errors         []string
	InstallerCalls [][]launcher.Installer
	Visible        bool
	ShownMain      int
	HiddenMain     int
	Quits          int
}

func (u *FakeUI) ShowMain() {
	u.Visible = true
	u.ShownMain++
}

func (u *FakeUI) HideMain() {
	u.Visible = false
	u.HiddenMain++
}

func (u *FakeUI) MainVisible() bool {
	return u.Visible
}

func (u *FakeUI) Quit() {
	u.Quits++
}

func (u *FakeUI) ShowError(msg string) {
	u.Errors = append(u.Errors, msg)
}

func (u *FakeUI) ShowInstaller(installers []launcher.Installer, _, _ string) {
	u.InstallerCalls = append(u.InstallerCalls, installers)
}
