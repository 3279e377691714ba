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
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// CredentialEntry holds authentication credentials for a URL.
type CredentialEntry struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Bearer   string `toml:"bearer"`
}

// Auth is the on-disk auth.toml layout: [creds."https://example.com"].
type Auth struct {
	Creds map[string]CredentialEntry `toml:"creds,omitempty"`
}

// LookupAuth returns credentials matching the given URL, or nil if no
// configured entry is a prefix match. The longest matching entry wins.
func LookupAuth(auth Auth, reqURL string) *CredentialEntry {
	parsed, err := url.Parse(reqURL)
	if err != nil {
		log.Debug().Err(err).Msgf("invalid request url for auth lookup: %s", reqURL)
		return nil
	}

	var best string
	var creds *CredentialEntry
	for prefix, entry := range auth.Creds {
		prefixURL, err := url.Parse(prefix)
		if err != nil {
			log.Warn().Msgf("invalid auth entry url: %s", prefix)
			continue
		}
		if prefixURL.Scheme != parsed.Scheme || prefixURL.Host != parsed.Host {
			continue
		}
		if !strings.HasPrefix(parsed.Path, prefixURL.Path) {
			continue
		}
		if len(prefix) > len(best) {
			best = prefix
			entry := entry
			creds = &entry
		}
	}
	return creds
}
