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

// Package launcher turns heterogeneous invocation inputs (CLI flags, custom
// scheme URIs) into a single canonical action and resolves which game it
// applies to.
package launcher

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/GantryProject/gantry-core/pkg/config"
)

var (
	// ErrInvalidURI is returned when a URI is present but does not match
	// the recognized scheme or grammar.
	ErrInvalidURI = errors.New("not a valid URI")
	// ErrDownload is returned when fetching a remote installer file fails.
	ErrDownload = errors.New("download failed")
	// ErrMissingFile is returned when an installer file path does not
	// reference an existing local file.
	ErrMissingFile = errors.New("no such file")
)

// InstallerInfo is the parsed form of one invocation's URI. Immutable after
// parse; empty fields mean unset.
type InstallerInfo struct {
	GameSlug string
	Revision string
	Action   Action
	Service  string
	AppID    string
}

// ParseInstallerURI parses a gantry: URI into an InstallerInfo. An empty
// input is not an error and yields a zero InstallerInfo. Recognized forms:
//
//	gantry:install/some-game
//	gantry:rungame/some-game?revision=beta
//	gantry:rungameid/42
//	gantry://install/some-game?service=gog&appid=1207658930
func ParseInstallerURI(raw string) (InstallerInfo, error) {
	if raw == "" {
		return InstallerInfo{}, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return InstallerInfo{}, fmt.Errorf("%w: %s", ErrInvalidURI, raw)
	}
	if parsed.Scheme != config.URIScheme {
		return InstallerInfo{}, fmt.Errorf("%w: %s", ErrInvalidURI, raw)
	}

	// gantry:action/id parses as opaque, gantry://action/id as host+path
	path := parsed.Opaque
	if path == "" {
		path = strings.TrimPrefix(parsed.Host+parsed.Path, "/")
	}
	path = strings.Trim(path, "/")

	actionStr, slug, _ := strings.Cut(path, "/")
	action := Action(actionStr)
	switch action {
	case ActionInstall, ActionRunGame, ActionRunGameByID:
	default:
		return InstallerInfo{}, fmt.Errorf("%w: %s", ErrInvalidURI, raw)
	}
	if slug == "" {
		return InstallerInfo{}, fmt.Errorf("%w: %s", ErrInvalidURI, raw)
	}

	query := parsed.Query()
	return InstallerInfo{
		GameSlug: slug,
		Revision: query.Get("revision"),
		Action:   action,
		Service:  query.Get("service"),
		AppID:    query.Get("appid"),
	}, nil
}
