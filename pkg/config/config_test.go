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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigWritesDefaults(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))
	assert.False(t, cfg.DebugLogging())
	assert.False(t, cfg.HideOnGameStart())
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetHideOnGameStart(true)
	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.True(t, reloaded.HideOnGameStart())
	assert.True(t, reloaded.DebugLogging())
}

func TestLoadRejectsSchemaMismatch(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	body := "config_schema = 99\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(body), 0o600))

	_, err := NewConfig(dir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestMissingFieldsKeepDefaults(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	defaults := BaseDefaults
	defaults.DebugLogging = true

	body := "config_schema = 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(body), 0o600))

	cfg, err := NewConfig(dir, defaults)
	require.NoError(t, err)
	assert.True(t, cfg.DebugLogging())
}

func TestInstallCacheDirFallsBackToTemp(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, os.TempDir(), cfg.InstallCacheDir())
}

func TestLookupAuthLongestPrefixWins(t *testing.T) {
	t.Parallel()

	auth := Auth{Creds: map[string]CredentialEntry{
		"https://api.example.com":       {Bearer: "broad"},
		"https://api.example.com/games": {Bearer: "narrow"},
		"https://other.example.com":     {Bearer: "other"},
	}}

	creds := LookupAuth(auth, "https://api.example.com/games/quake")
	require.NotNil(t, creds)
	assert.Equal(t, "narrow", creds.Bearer)

	creds = LookupAuth(auth, "https://api.example.com/installers")
	require.NotNil(t, creds)
	assert.Equal(t, "broad", creds.Bearer)
}

func TestLookupAuthRequiresSchemeAndHostMatch(t *testing.T) {
	t.Parallel()

	auth := Auth{Creds: map[string]CredentialEntry{
		"https://api.example.com": {Bearer: "token"},
	}}

	assert.Nil(t, LookupAuth(auth, "http://api.example.com/games"))
	assert.Nil(t, LookupAuth(auth, "https://example.com/games"))
	assert.Nil(t, LookupAuth(Auth{}, "https://api.example.com/games"))
}

func TestAuthFileLoadsIntoGlobal(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	body := "[creds.\"https://api.example.com\"]\nbearer = \"token\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, AuthFile), []byte(body), 0o600))

	_, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	creds := LookupAuth(GetAuthCfg(), "https://api.example.com/games")
	require.NotNil(t, creds)
	assert.Equal(t, "token", creds.Bearer)
}
