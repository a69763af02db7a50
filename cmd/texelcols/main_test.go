// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelcols/internal/tabledef"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_StdinTSV(t *testing.T) {
	out, _, err := execute(t, "NAME\tSIZE\nsda\t100\nsda1\t6\n")
	require.NoError(t, err)
	assert.Equal(t, "NAME SIZE\nsda   100\nsda1    6\n", out)
}

func TestRun_ForcedWidthTruncates(t *testing.T) {
	def := `{
  "columns": [
    {"name": "K"},
    {"name": "V", "flags": ["trunc"]}
  ],
  "rows": [{"cells": ["k", "abcdefghijklmnop"]}]
}`
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, os.WriteFile(path, []byte(def), 0o644))

	out, _, err := execute(t, "", "--width", "10", "--noheadings", path)
	require.NoError(t, err)
	assert.Equal(t, "k abcdefgh\n", out)
}

func TestRun_BoxAndSeparator(t *testing.T) {
	out, _, err := execute(t, "a,b\n1,x\n", "--box", "--ascii")
	require.NoError(t, err)
	assert.Equal(t, "+---+---+\n| a | b |\n+---+---+\n| 1 | x |\n+---+---+\n", out)

	out, _, err = execute(t, "a\tb\n1\tx\n", "-s", "|", "-n")
	require.NoError(t, err)
	assert.Equal(t, "1|x\n", out)
}

func TestRun_DebugLogsPhases(t *testing.T) {
	_, errOut, err := execute(t, "a\tb\n1\tx\n", "--debug", "--width", "20")
	require.NoError(t, err)
	assert.Contains(t, errOut, "phase=")
	assert.Contains(t, errOut, "printing table")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "t.ini"))
	assert.ErrorIs(t, err, tabledef.ErrUnknownFormat)

	_, _, err = execute(t, "a\n", "--delimiter", "ab")
	assert.Error(t, err)

	_, _, err = execute(t, "", "a", "b")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "texelcols.json")
	assert.Contains(t, out, `separator=" "`)
}
