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
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/GantryProject/gantry-core/pkg/config"
	"github.com/rs/zerolog/log"
)

// DefaultTimeoutSeconds is the default timeout for HTTP requests
const DefaultTimeoutSeconds = 30

// AuthTransport provides automatic authentication for HTTP requests based on auth.toml
type AuthTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper with automatic authentication
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Base == nil {
		t.Base = http.DefaultTransport
	}

	creds := config.LookupAuth(config.GetAuthCfg(), req.URL.String())
	if creds != nil {
		if creds.Bearer != "" {
			req.Header.Set("Authorization", "Bearer "+creds.Bearer)
		} else if creds.Username != "" {
			user := creds.Username
			pass := creds.Password
			auth := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
			req.Header.Set("Authorization", "Basic "+auth)
		}
	}

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}
	return resp, nil
}

// DefaultTransport provides a configured transport with connection pooling and reasonable timeouts
var DefaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// Client provides an HTTP client with authentication and sensible defaults
type Client struct {
	*http.Client
}

// NewClient creates a new HTTP client with authentication support
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeoutSeconds * time.Second)
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		Client: &http.Client{
			Transport: &AuthTransport{
				Base: DefaultTransport,
			},
			Timeout: timeout,
		},
	}
}

// Download fetches url into destDir. The destination file name comes from
// the Content-Disposition response header when present, otherwise the
// basename of the URL. Returns the path of the downloaded file.
func (c *Client) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", fmt.Errorf("error getting url: %w", err)
	}
	if resp == nil {
		return "", errors.New("received nil response")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	name := fileNameFromResponse(resp, rawURL)
	outputPath := filepath.Join(destDir, name)

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return "", fmt.Errorf("error creating download directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304 - path derived from trusted dest dir
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		cleanupPartial(file, outputPath)
		return "", fmt.Errorf("error downloading file: %w", err)
	}

	expected := resp.ContentLength
	if expected > 0 && written != expected {
		cleanupPartial(file, outputPath)
		return "", fmt.Errorf("download incomplete: expected %d bytes, got %d", expected, written)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing file: %w", err)
	}

	log.Debug().Msgf("downloaded %s to %s", rawURL, outputPath)
	return outputPath, nil
}

func cleanupPartial(file *os.File, outputPath string) {
	if closeErr := file.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msgf("error closing file: %s", outputPath)
	}
	if removeErr := os.Remove(outputPath); removeErr != nil {
		log.Warn().Err(removeErr).Msgf("error removing partial download: %s", outputPath)
	}
}

func fileNameFromResponse(resp *http.Response, rawURL string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." && name != "/" {
				return name
			}
		}
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		if name := path.Base(parsed.Path); name != "" && name != "." && name != "/" {
			return name
		}
	}
	return "download"
}
