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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstallerURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		uri     string
		want    InstallerInfo
		wantErr bool
	}{
		{
			name: "empty invocation yields zero info",
			uri:  "",
			want: InstallerInfo{},
		},
		{
			name: "install action with slug",
			uri:  "gantry:install/quake",
			want: InstallerInfo{GameSlug: "quake", Action: ActionInstall},
		},
		{
			name: "rungame action",
			uri:  "gantry:rungame/quake",
			want: InstallerInfo{GameSlug: "quake", Action: ActionRunGame},
		},
		{
			name: "rungameid action with numeric id",
			uri:  "gantry:rungameid/42",
			want: InstallerInfo{GameSlug: "42", Action: ActionRunGameByID},
		},
		{
			name: "double slash form",
			uri:  "gantry://install/quake",
			want: InstallerInfo{GameSlug: "quake", Action: ActionInstall},
		},
		{
			name: "query parameters",
			uri:  "gantry:install/quake?revision=beta&service=gog&appid=1207658930",
			want: InstallerInfo{
				GameSlug: "quake",
				Revision: "beta",
				Action:   ActionInstall,
				Service:  "gog",
				AppID:    "1207658930",
			},
		},
		{
			name:    "wrong scheme",
			uri:     "steam:install/quake",
			wantErr: true,
		},
		{
			name:    "unrecognized action",
			uri:     "gantry:uninstall/quake",
			wantErr: true,
		},
		{
			name:    "missing identifier",
			uri:     "gantry:install",
			wantErr: true,
		},
		{
			name:    "not a uri at all",
			uri:     "quake",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseInstallerURI(tt.uri)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
