// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config with its sections copied one level
// deep.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		if section := cfg.Section(name); section != nil {
			clone[name] = section.clone()
			continue
		}
		clone[name] = value
	}
	return clone
}

func (s Section) clone() Section {
	out := make(Section, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}
