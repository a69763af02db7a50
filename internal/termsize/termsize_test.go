// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package termsize

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Pty(t *testing.T) {
	t.Setenv("COLUMNS", "")
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 132}))

	info := Detect(tty)
	assert.True(t, info.IsTerm)
	assert.Equal(t, 132, info.Width)
}

func TestDetect_EnvOverride(t *testing.T) {
	t.Setenv("COLUMNS", "40")
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 132}))

	assert.Equal(t, Info{IsTerm: true, Width: 40}, Detect(tty))
}

func TestDetect_NotTerminal(t *testing.T) {
	t.Setenv("COLUMNS", "")
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, Info{Width: DefaultWidth}, Detect(f))
	assert.Equal(t, Info{Width: DefaultWidth}, Detect(nil))

	t.Setenv("COLUMNS", "bogus")
	assert.Equal(t, DefaultWidth, Detect(f).Width)
	t.Setenv("COLUMNS", "100")
	assert.Equal(t, 100, Detect(f).Width)
}
