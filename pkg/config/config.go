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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/GantryProject/gantry-core/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "GANTRY_CFG"
	AppEnv        = "GANTRY_APP"
)

type Values struct {
	Install      Install `toml:"install,omitempty"`
	UI           UI      `toml:"ui,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

// UI controls main window and tray behavior around game lifecycle events.
type UI struct {
	HideOnGameStart bool `toml:"hide_on_game_start"`
	ShowTrayIcon    bool `toml:"show_tray_icon"`
}

type Install struct {
	// CacheDir overrides where remote installer files are downloaded to.
	// Empty means the system temp directory.
	CacheDir *string `toml:"cache_dir,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

type Instance struct {
	appPath  string
	cfgPath  string
	authPath string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

var authCfg atomic.Value

func GetAuthCfg() Auth {
	val := authCfg.Load()
	if val == nil {
		return Auth{}
	}
	auth, ok := val.(Auth)
	if !ok {
		return Auth{}
	}
	return auth
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		appPath:  os.Getenv(AppEnv),
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	cfg.authPath = filepath.Join(filepath.Dir(cfgPath), AuthFile)

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals

	// load auth file
	if _, err := os.Stat(c.authPath); err == nil {
		log.Info().Msg("loading auth file")
		authData, err := os.ReadFile(c.authPath)
		if err != nil {
			return fmt.Errorf("failed to read auth file: %w", err)
		}

		var authVals Auth
		err = toml.Unmarshal(authData, &authVals)
		if err != nil {
			return fmt.Errorf("failed to unmarshal auth file: %w", err)
		}

		log.Info().Msgf("loaded %d auth entries", len(authVals.Creds))

		authCfg.Store(authVals)
	}

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) AppPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.appPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) HideOnGameStart() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.UI.HideOnGameStart
}

func (c *Instance) SetHideOnGameStart(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.UI.HideOnGameStart = enabled
}

func (c *Instance) ShowTrayIcon() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.UI.ShowTrayIcon
}

// InstallCacheDir returns the directory remote installer files are saved
// to, falling back to the system temp directory.
func (c *Instance) InstallCacheDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Install.CacheDir != nil && *c.vals.Install.CacheDir != "" {
		return *c.vals.Install.CacheDir
	}
	return os.TempDir()
}
