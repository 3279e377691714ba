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
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ExecRuntime runs commands through the system shell. It satisfies Runtime
// for the -exec flag; monitoring of the spawned process is out of its hands.
type ExecRuntime struct{}

func (ExecRuntime) Exec(ctx context.Context, command string) error {
	log.Info().Msgf("running command '%s'", command)
	cmd := exec.CommandContext(ctx, "sh", "-c", command) // #nosec G204 - command comes from the user's own flag
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		log.Debug().Msgf("command output: %s", output)
	}
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
