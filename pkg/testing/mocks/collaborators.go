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
	"context"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/GantryProject/gantry-core/pkg/launcher"
	"github.com/stretchr/testify/mock"
)

type MockDiscovery struct {
	mock.Mock
}

func (m *MockDiscovery) Find(ctx context.Context, gameSlug, installerFile, revision string) ([]launcher.Installer, error) {
	args := m.Called(ctx, gameSlug, installerFile, revision)
	installers, _ := args.Get(0).([]launcher.Installer)
	return installers, args.Error(1)
}

type MockLauncher struct {
	mock.Mock
}

func (m *MockLauncher) Launch(ctx context.Context, game *database.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

type MockServiceInstaller struct {
	mock.Mock
}

func (m *MockServiceInstaller) Install(ctx context.Context, sg *database.ServiceGame) (int64, error) {
	args := m.Called(ctx, sg)
	return args.Get(0).(int64), args.Error(1)
}

type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Download(ctx context.Context, url, destDir string) (string, error) {
	args := m.Called(ctx, url, destDir)
	return args.String(0), args.Error(1)
}

type MockRuntime struct {
	mock.Mock
}

func (m *MockRuntime) Exec(ctx context.Context, command string) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

// StubPrompter answers the install-or-play question with a fixed choice.
type StubPrompter struct {
	Choice    launcher.PromptChoice
	Confirmed bool
	Asked     int
}

func (p *StubPrompter) InstallOrPlay(string) (launcher.PromptChoice, bool) {
	p.Asked++
	return p.Choice, p.Confirmed
}
