// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

// CurrentConfigVersion is written into new config files. Bump it when a
// field changes meaning so old files can be migrated on load.
const CurrentConfigVersion = "1"

type TaskflowConfig struct {
	// Meta: config file bookkeeping
	Meta MetaConfig `yaml:"meta"`

	// Server: where the task API lives
	Server ServerConfig `yaml:"server"`

	// UI: presentation preferences shared by the CLI and the board
	UI UIConfig `yaml:"ui"`

	// Logging: destination and verbosity for structured logs
	Logging LoggingConfig `yaml:"logging"`
}

type MetaConfig struct {
	Version string `yaml:"version"`
}

type ServerConfig struct {
	BaseURL string `yaml:"base_url"` // e.g. http://localhost:5000
}

type UIConfig struct {
	Theme       string `yaml:"theme"`        // "light" or "dark"
	Personality string `yaml:"personality"`  // full, standard, minimal, machine
	DefaultView string `yaml:"default_view"` // all, today, pending, done
	DefaultSort string `yaml:"default_sort"` // created_desc, created_asc, due_asc, due_desc, priority
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // log file directory, "" disables file logging
}

func DefaultConfig() TaskflowConfig {
	return TaskflowConfig{
		Meta: MetaConfig{
			Version: CurrentConfigVersion,
		},
		Server: ServerConfig{
			BaseURL: "http://localhost:5000",
		},
		UI: UIConfig{
			Theme:       "light",
			Personality: "",
			DefaultView: "all",
			DefaultSort: "created_desc",
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "~/.taskflow/logs",
		},
	}
}
