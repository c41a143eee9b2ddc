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

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDir returns the taskflow state directory, ~/.taskflow. The config
// file, the session files, and (by default) the logs all live under it.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".taskflow"), nil
}

// DefaultPath returns the default config file location,
// ~/.taskflow/taskflow.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskflow.yaml"), nil
}

// Load reads the config at path, creating it with defaults on first run.
// Missing fields are filled in from defaults so a hand-trimmed file keeps
// working.
func Load(path string) (TaskflowConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "First run detected, creating the config at %s\n", path)
		if err := Save(path, DefaultConfig()); err != nil {
			return TaskflowConfig{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return TaskflowConfig{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	var cfg TaskflowConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return TaskflowConfig{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// Save writes cfg to path, creating the directory when missing.
func Save(path string, cfg TaskflowConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyDefaults fills empty fields from DefaultConfig and normalizes the
// theme. Unknown theme values fall back to light rather than erroring.
func applyDefaults(cfg *TaskflowConfig) {
	def := DefaultConfig()

	if cfg.Meta.Version == "" {
		cfg.Meta.Version = def.Meta.Version
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = def.Server.BaseURL
	}
	if cfg.UI.Theme != "light" && cfg.UI.Theme != "dark" {
		cfg.UI.Theme = def.UI.Theme
	}
	if cfg.UI.DefaultView == "" {
		cfg.UI.DefaultView = def.UI.DefaultView
	}
	if cfg.UI.DefaultSort == "" {
		cfg.UI.DefaultSort = def.UI.DefaultSort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}
