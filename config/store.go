// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and reload logic for the config store.

package config

import "github.com/rs/zerolog/log"

// loadSystemLocked reads texelcols.json, writing a file with defaults when
// none exists or it is empty. A broken file leaves defaults in memory.
func loadSystemLocked() error {
	path, err := Path()
	if err != nil {
		log.Warn().Err(err).Msg("config: cannot resolve config path")
		system = make(Config)
		applyDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Warn().Err(readErr).Str("path", path).Msg("config: read failed")
		cfg = make(Config)
	}

	if !exists || (readErr == nil && len(cfg) == 0) {
		cfg = make(Config)
		applyDefaults(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("config: cannot write defaults")
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applyDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log.Debug().Str("path", path).Msg("config: loaded")
	}
	return readErr
}
