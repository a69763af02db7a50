// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name
// addresses the top level.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults adds missing keys to a section, creating it if needed.
// Existing values are kept.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) GetString(sectionName, key, defaultValue string) string {
	return c.Section(sectionName).String(key, defaultValue)
}

func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	return c.Section(sectionName).Float(key, defaultValue)
}

func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	return c.Section(sectionName).Int(key, defaultValue)
}

func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	return c.Section(sectionName).Bool(key, defaultValue)
}

// String returns the value of key if it is a string.
func (s Section) String(key, defaultValue string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return defaultValue
}

// Float accepts any numeric value or a numeric string.
func (s Section) Float(key string, defaultValue float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if parsed, err := v.Float64(); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Int accepts any numeric value or an integer string. Fractions are cut.
func (s Section) Int(key string, defaultValue int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Bool accepts booleans, strconv.ParseBool strings and numbers (non-zero
// is true).
func (s Section) Bool(key string, defaultValue bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return defaultValue
}
