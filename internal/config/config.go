/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal, so additions stay forward-compatible.

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "default" or a path to a theme JSON file
}

type OverlayConfig struct {
	// DefaultItemCells is the edge length of a new item in grid cells.
	DefaultItemCells int `yaml:"default_item_cells"`
	// ZoomStep is the factor the preview zooms by per wheel click or
	// menu action. Must be greater than 1.
	ZoomStep float64 `yaml:"zoom_step"`
	// ToggleHotkey shows/hides the overlay window; only "ctrl+p" style
	// modifier+letter combinations are understood.
	ToggleHotkey string `yaml:"toggle_hotkey"`
	// ScreenWidth/ScreenHeight override the detected screen resolution
	// that the preview and overlay are sized from. Zero means autodetect.
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Overlay       OverlayConfig `yaml:"overlay"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "default"},
		Overlay:       OverlayConfig{DefaultItemCells: 4, ZoomStep: 1.25, ToggleHotkey: "ctrl+p", ScreenWidth: 0, ScreenHeight: 0},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvTelemetryOptIn = "ELV_TELEMETRY_OPT_IN"
	EnvTheme          = "ELV_THEME"
	EnvZoomStep       = "ELV_ZOOM_STEP"
	EnvToggleHotkey   = "ELV_OVERLAY_HOTKEY"
	EnvScreenWidth    = "ELV_SCREEN_WIDTH"
	EnvScreenHeight   = "ELV_SCREEN_HEIGHT"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "ELV_LOG_LEVEL"
	EnvLogFormat = "ELV_LOG_FORMAT"
	EnvLogSource = "ELV_LOG_SOURCE"
	EnvLogFile   = "ELV_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Elayvate")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Elayvate")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "elayvate")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.General.Theme) != "" {
		dst.General.Theme = strings.TrimSpace(src.General.Theme)
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.Overlay.DefaultItemCells > 0 {
		dst.Overlay.DefaultItemCells = src.Overlay.DefaultItemCells
	}
	if src.Overlay.ZoomStep > 1 {
		dst.Overlay.ZoomStep = src.Overlay.ZoomStep
	}
	if strings.TrimSpace(src.Overlay.ToggleHotkey) != "" {
		dst.Overlay.ToggleHotkey = strings.ToLower(strings.TrimSpace(src.Overlay.ToggleHotkey))
	}
	if src.Overlay.ScreenWidth > 0 {
		dst.Overlay.ScreenWidth = src.Overlay.ScreenWidth
	}
	if src.Overlay.ScreenHeight > 0 {
		dst.Overlay.ScreenHeight = src.Overlay.ScreenHeight
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		lv := strings.ToLower(v)
		cfg.General.TelemetryOptIn = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvZoomStep)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 1 {
			cfg.Overlay.ZoomStep = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvToggleHotkey)); v != "" {
		cfg.Overlay.ToggleHotkey = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvScreenWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Overlay.ScreenWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvScreenHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Overlay.ScreenHeight = n
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	switch key {
	case "general.telemetry_opt_in":
		if os.Getenv(EnvTelemetryOptIn) != "" {
			return EnvTelemetryOptIn, true
		}
	case "general.theme":
		if os.Getenv(EnvTheme) != "" {
			return EnvTheme, true
		}
	case "overlay.zoom_step":
		if os.Getenv(EnvZoomStep) != "" {
			return EnvZoomStep, true
		}
	case "overlay.toggle_hotkey":
		if os.Getenv(EnvToggleHotkey) != "" {
			return EnvToggleHotkey, true
		}
	case "overlay.screen_width":
		if os.Getenv(EnvScreenWidth) != "" {
			return EnvScreenWidth, true
		}
	case "overlay.screen_height":
		if os.Getenv(EnvScreenHeight) != "" {
			return EnvScreenHeight, true
		}
	case "logging.level":
		if os.Getenv(EnvLogLevel) != "" {
			return EnvLogLevel, true
		}
	case "logging.format":
		if os.Getenv(EnvLogFormat) != "" {
			return EnvLogFormat, true
		}
	case "logging.source":
		if os.Getenv(EnvLogSource) != "" {
			return EnvLogSource, true
		}
	case "logging.file":
		if os.Getenv(EnvLogFile) != "" {
			return EnvLogFile, true
		}
	}
	return "", false
}
