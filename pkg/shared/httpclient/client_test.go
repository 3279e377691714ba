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

package httpclient

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadUsesContentDispositionName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="quake-setup.exe"`)
		_, _ = w.Write([]byte("installer payload"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	path, err := NewClient().Download(t.Context(), server.URL+"/download", destDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destDir, "quake-setup.exe"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "installer payload", string(data))
}

func TestDownloadFallsBackToURLBasename(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	path, err := NewClient().Download(t.Context(), server.URL+"/files/installer.sh", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "installer.sh"), path)
}

func TestDownloadRejectsNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	destDir := t.TempDir()
	_, err := NewClient().Download(t.Context(), server.URL+"/missing.exe", destDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status code")

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed download must not leave files behind")
}

func TestAuthTransportWithoutCredentials(t *testing.T) {
	t.Parallel()

	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	// No credentials configured for this host: no header is injected.
	resp, err := NewClient().Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Empty(t, got)
}
