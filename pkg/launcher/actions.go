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

// Action is the single canonical operation performed for one invocation.
type Action string

const (
	ActionNone             Action = ""
	ActionList             Action = "list"
	ActionListJSON         Action = "list-json"
	ActionListSteamGames   Action = "list-steam-games"
	ActionListSteamFolders Action = "list-steam-folders"
	ActionExec             Action = "exec"
	ActionSubmitIssue      Action = "submit-issue"
	ActionWriteScript      Action = "write-script"
	ActionInstall          Action = "install"
	ActionRunGame          Action = "rungame"
	ActionRunGameByID      Action = "rungameid"
)
