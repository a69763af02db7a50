// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the configuration file.

package config

import "github.com/framegrace/texelcols/columns"

// TableSection holds the table layout settings.
const TableSection = "table"

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(TableSection, Section{
		"maxout":     false,
		"nowrap":     false,
		"noencoding": false,
		"separator":  columns.DefaultSeparator,
		"width":      0,
		"ascii":      false,
		"noheadings": false,
		"box":        false,
	})
}
