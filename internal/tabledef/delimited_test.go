// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabledef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDelimited_Tabs(t *testing.T) {
	in := "NAME\tSIZE\n\nsda\t100\nsda1\t60\textra\n"
	def, err := ReadDelimited(strings.NewReader(in), 0)
	require.NoError(t, err)

	require.Len(t, def.Columns, 3)
	assert.Equal(t, "NAME", def.Columns[0].Name)
	assert.Equal(t, "", def.Columns[2].Name)
	require.Len(t, def.Rows, 2)
	assert.Equal(t, []string{"sda1", "60", "extra"}, def.Rows[1].Cells)
}

func TestReadDelimited_CommaWithQuotes(t *testing.T) {
	in := "a,b,c\r\n1,\"x, y\",\"say \"\"hi\"\"\"\r\n2,z,w\r\n"
	def, err := ReadDelimited(strings.NewReader(in), 0)
	require.NoError(t, err)

	require.Len(t, def.Rows, 2)
	assert.Equal(t, []string{"1", "x, y", `say "hi"`}, def.Rows[0].Cells)
}

func TestReadDelimited_Empty(t *testing.T) {
	def, err := ReadDelimited(strings.NewReader("\n\n"), '\t')
	require.NoError(t, err)
	assert.Empty(t, def.Columns)
	assert.Empty(t, def.Rows)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, byte('\t'), DetectDelimiter([]string{"a\tb", "c\td"}))
	assert.Equal(t, byte(','), DetectDelimiter([]string{"a,b", "c,d"}))
	assert.Equal(t, byte('\t'), DetectDelimiter([]string{"plain", "text"}))
	assert.Equal(t, byte('\t'), DetectDelimiter(nil))
}
