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

// Package mocks provides testify mocks for the orchestrator's collaborator
// interfaces.
package mocks

import (
	"context"

	"github.com/GantryProject/gantry-core/pkg/database"
	"github.com/stretchr/testify/mock"
)

// MockLibrary mocks the game database surface (lookups, service catalog,
// listing).
type MockLibrary struct {
	mock.Mock
}

func NewMockLibrary() *MockLibrary {
	return &MockLibrary{}
}

func (m *MockLibrary) GameByID(ctx context.Context, id int64) (*database.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*database.Game)
	return game, args.Error(1)
}

func (m *MockLibrary) GameBySlug(ctx context.Context, slug string) (*database.Game, error) {
	args := m.Called(ctx, slug)
	game, _ := args.Get(0).(*database.Game)
	return game, args.Error(1)
}

func (m *MockLibrary) GameByInstallerSlug(ctx context.Context, slug string) (*database.Game, error) {
	args := m.Called(ctx, slug)
	game, _ := args.Get(0).(*database.Game)
	return game, args.Error(1)
}

func (m *MockLibrary) ServiceGame(ctx context.Context, service, appID string) (*database.ServiceGame, error) {
	args := m.Called(ctx, service, appID)
	sg, _ := args.Get(0).(*database.ServiceGame)
	return sg, args.Error(1)
}

func (m *MockLibrary) ListGames(ctx context.Context, installedOnly bool) ([]database.Game, error) {
	args := m.Called(ctx, installedOnly)
	games, _ := args.Get(0).([]database.Game)
	return games, args.Error(1)
}

func (m *MockLibrary) TouchLastPlayed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MissAllLookups stubs every lookup to return a miss.
func (m *MockLibrary) MissAllLookups() {
	m.On("GameByID", mock.Anything, mock.Anything).Return(nil, nil)
	m.On("GameBySlug", mock.Anything, mock.Anything).Return(nil, nil)
	m.On("GameByInstallerSlug", mock.Anything, mock.Anything).Return(nil, nil)
}
