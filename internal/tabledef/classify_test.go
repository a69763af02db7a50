// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabledef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   ColumnType
	}{
		{"number", []string{"42", "100", "7", "1,234"}, TypeNumber},
		{"percent", []string{"42%", "100%", "7%"}, TypeNumber},
		{"negative", []string{"-42", "100", "-7", "0"}, TypeNumber},
		{"age", []string{"5d", "3d", "10d", "2d"}, TypeDateTime},
		{"iso date", []string{"2024-01-15", "2024-02-20", "2024-03-10"}, TypeDateTime},
		{"clock", []string{"12:30", "08:45", "23:59:59"}, TypeDateTime},
		{"path", []string{"/usr/bin", "main.go", "README", "docs"}, TypePath},
		{"text", []string{"alpha", "beta", "gamma"}, TypeText},
		{"placeholders only", []string{"", "-", "<none>"}, TypeText},
		{"minority numbers", []string{"1", "two", "three"}, TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.values))
		})
	}
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "number", TypeNumber.String())
	assert.Equal(t, "unknown", ColumnType(42).String())
}
