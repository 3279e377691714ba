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

package app

import (
	"strings"
	"testing"

	"github.com/GantryProject/gantry-core/pkg/cli"
	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/GantryProject/gantry-core/pkg/platforms/steam"
	"github.com/GantryProject/gantry-core/pkg/service/events"
	"github.com/GantryProject/gantry-core/pkg/testing/helpers"
	"github.com/GantryProject/gantry-core/pkg/testing/mocks"
	"github.com/GantryProject/gantry-core/pkg/ui"
	"github.com/GantryProject/gantry-core/pkg/ui/windows"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appFixture struct {
	app       *App
	lib       *mocks.MockLibrary
	disc      *mocks.MockDiscovery
	launch    *mocks.MockLauncher
	svc       *mocks.MockServiceInstaller
	runtime   *mocks.MockRuntime
	download  *mocks.MockDownloader
	stdout    *strings.Builder
	shutdowns int
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	f := &appFixture{
		lib:      &mocks.MockLibrary{},
		disc:     &mocks.MockDiscovery{},
		launch:   &mocks.MockLauncher{},
		svc:      &mocks.MockServiceInstaller{},
		runtime:  &mocks.MockRuntime{},
		download: &mocks.MockDownloader{},
		stdout:   &strings.Builder{},
	}

	f.app = New(t.Context(), Deps{
		Cfg:       helpers.NewTestConfig(t),
		Library:   f.lib,
		Services:  launcher.StaticServices{"gog": f.svc},
		Discovery: f.disc,
		NewLauncher: func(*events.Bus) launcher.GameLauncher {
			return f.launch
		},
		Runtime:    f.runtime,
		Prompter:   &mocks.StubPrompter{},
		Download:   f.download,
		Steam:      steam.NewScanner(afero.NewMemMapFs()),
		Stdout:     f.stdout,
		OnShutdown: func() { f.shutdowns++ },
	})

	for _, kind := range []windows.Kind{windows.KindMain, windows.KindInstaller, windows.KindIssueReport} {
		f.app.Windows().RegisterFactory(kind, ui.InertFactory(kind))
	}
	return f
}

func newFlags() *cli.Flags {
	str := func() *string { s := ""; return &s }
	flag := func() *bool { b := false; return &b }
	return &cli.Flags{
		Install:          str(),
		OutputScript:     str(),
		Exec:             str(),
		Version:          flag(),
		Debug:            flag(),
		ListGames:        flag(),
		Installed:        flag(),
		JSON:             flag(),
		ListSteamGames:   flag(),
		ListSteamFolders: flag(),
		Reinstall:        flag(),
		SubmitIssue:      flag(),
	}
}

func TestEmptyInvocationPresentsMainWindow(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	code := f.app.CommandLine(t.Context(), newFlags(), "")

	assert.Equal(t, 0, code)
	assert.True(t, f.app.Presenter().MainVisible())
	assert.True(t, f.app.Windows().Open(windows.KindMain, windows.ShowArgs{Runner: "main"}))
}

func TestVersionFlagShortCircuits(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	flags := newFlags()
	*flags.Version = true
	code := f.app.CommandLine(t.Context(), flags, "")

	assert.Equal(t, 0, code)
	assert.Equal(t, "gantry-0.5.0\n", f.stdout.String())
	assert.False(t, f.app.Presenter().MainVisible())
}

func TestListGamesShortCircuitsWithoutLookup(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	f.lib.On("ListGames", mock.Anything, false).Return([]database.Game{
		{ID: 1, Name: "Quake", Slug: "quake"},
	}, nil)

	flags := newFlags()
	*flags.ListGames = true
	code := f.app.CommandLine(t.Context(), flags, "gantry:rungame/quake")

	assert.Equal(t, 0, code)
	assert.Contains(t, f.stdout.String(), "Quake")
	assert.False(t, f.app.Presenter().MainVisible(), "list output must not open windows")
	f.lib.AssertNotCalled(t, "GameBySlug", mock.Anything, mock.Anything)
}

func TestInvalidURIFailsInvocation(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	code := f.app.CommandLine(t.Context(), newFlags(), "gantry:badaction/quake")

	assert.Equal(t, 1, code)
	assert.Contains(t, f.stdout.String(), "is not a valid URI")
}

func TestRunGameByIDMissShutsDownWhenHidden(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)
	f.lib.MissAllLookups()

	code := f.app.CommandLine(t.Context(), newFlags(), "gantry:rungameid/42")

	assert.Equal(t, 0, code)
	assert.Equal(t, 1, f.shutdowns)
	f.launch.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything)
	// Background mode applies: the main window never came up.
	assert.False(t, f.app.Presenter().MainVisible())
}

func TestRunGameLaunchesMatch(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	game := &database.Game{ID: 7, Slug: "quake", Installed: true}
	f.lib.On("GameBySlug", mock.Anything, "quake").Return(game, nil)
	f.launch.On("Launch", mock.Anything, game).Return(nil)

	code := f.app.CommandLine(t.Context(), newFlags(), "gantry:rungame/quake")

	assert.Equal(t, 0, code)
	f.launch.AssertCalled(t, "Launch", mock.Anything, game)
	assert.Equal(t, 0, f.shutdowns)
}

func TestInstallURIShowsInstallerWindow(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)
	f.lib.MissAllLookups()

	installers := []launcher.Installer{{GameSlug: "quake", Slug: "quake-gog"}}
	f.disc.On("Find", mock.Anything, "quake", "", "").Return(installers, nil)

	code := f.app.CommandLine(t.Context(), newFlags(), "gantry:install/quake")

	assert.Equal(t, 0, code)
	assert.True(t, f.app.Windows().Open(windows.KindInstaller, windows.ShowArgs{Installers: installers}))
}

func TestReinstallForcesInstallForInstalledGame(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	game := &database.Game{ID: 7, Slug: "quake", Installed: true}
	f.lib.On("GameByID", mock.Anything, mock.Anything).Return(nil, nil)
	f.lib.On("GameBySlug", mock.Anything, "quake").Return(game, nil)
	f.disc.On("Find", mock.Anything, "quake", "", "").Return([]launcher.Installer{{GameSlug: "quake"}}, nil)

	flags := newFlags()
	*flags.Reinstall = true
	code := f.app.CommandLine(t.Context(), flags, "gantry:rungame/quake")

	assert.Equal(t, 0, code)
	f.launch.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything)
	f.disc.AssertCalled(t, "Find", mock.Anything, "quake", "", "")
}

func TestServiceHandoffSkipsLocalDispatch(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	sg := &database.ServiceGame{Service: "gog", AppID: "1207658924", Name: "Quake"}
	f.lib.On("ServiceGame", mock.Anything, "gog", "1207658924").Return(sg, nil)
	f.svc.On("Install", mock.Anything, sg).Return(int64(0), nil)

	code := f.app.CommandLine(t.Context(), newFlags(),
		"gantry:install/quake?service=gog&appid=1207658924")

	assert.Equal(t, 0, code)
	f.svc.AssertCalled(t, "Install", mock.Anything, sg)
	f.disc.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceHandoffFallsThroughWhenUnknown(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	f.lib.On("ServiceGame", mock.Anything, "gog", "0").Return(nil, nil)
	f.disc.On("Find", mock.Anything, "quake", "", "").Return(nil, nil)

	code := f.app.CommandLine(t.Context(), newFlags(),
		"gantry:install/quake?service=gog&appid=0")

	assert.Equal(t, 0, code)
	f.disc.AssertCalled(t, "Find", mock.Anything, "quake", "", "")
}

func TestOutputScriptWithoutGameFails(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)
	f.lib.MissAllLookups()

	flags := newFlags()
	*flags.OutputScript = "/tmp/run-quake.sh"
	code := f.app.CommandLine(t.Context(), flags, "gantry:rungame/quake")

	assert.Equal(t, 1, code)
	assert.False(t, f.app.Presenter().MainVisible(), "script generation must stay headless")
}

func TestExecRunsCommandWithoutWindows(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	f.runtime.On("Exec", mock.Anything, "winecfg").Return(nil)

	flags := newFlags()
	*flags.Exec = "winecfg"
	code := f.app.CommandLine(t.Context(), flags, "")

	assert.Equal(t, 0, code)
	f.runtime.AssertCalled(t, "Exec", mock.Anything, "winecfg")
	assert.False(t, f.app.Presenter().MainVisible())
}

func TestSubmitIssueOpensReportWindow(t *testing.T) {
	t.Parallel()
	f := newAppFixture(t)

	flags := newFlags()
	*flags.SubmitIssue = true
	code := f.app.CommandLine(t.Context(), flags, "")

	require.Equal(t, 0, code)
	assert.True(t, f.app.Windows().Open(windows.KindIssueReport, windows.ShowArgs{Runner: "issue-report"}))
}
