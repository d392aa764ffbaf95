/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"elayvate/internal/config"
	"elayvate/internal/crash"
	applog "elayvate/internal/log"
	"elayvate/internal/theme"
	"elayvate/internal/ui"
	"elayvate/internal/version"
)

func usage() {
	fmt.Println("Elayvate — screen overlay composer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  elayvate version|-v|--version     Show version")
	fmt.Println("  elayvate config                   Print the resolved configuration path and values")
	fmt.Println("  elayvate theme <file>             Validate a theme JSON file")
	fmt.Println("  elayvate ui [<themeFile>]         Launch the editor (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover(nil) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Elayvate — screen overlay composer")
			fmt.Println(version.String())
			return
		case "config":
			path, err := config.ConfigPath()
			if err != nil {
				l.Error("config path failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			cfg, err := config.Load()
			if err != nil {
				l.Error("config load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Config file:", path)
			fmt.Printf("Theme: %s\n", cfg.General.Theme)
			fmt.Printf("Overlay hotkey: %s\n", cfg.Overlay.ToggleHotkey)
			fmt.Printf("Screen override: %dx%d\n", cfg.Overlay.ScreenWidth, cfg.Overlay.ScreenHeight)
			fmt.Printf("Telemetry opt-in: %v\n", cfg.General.TelemetryOptIn)
			return
		case "theme":
			if len(args) < 3 {
				fmt.Println("theme requires <file>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("validate theme", slog.String("path", abs))
			th, err := theme.Load(abs)
			if err != nil {
				l.Error("theme invalid", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Printf("Theme %q is valid.\n", th.Name)
			return
		case "ui":
			var themeFile string
			if len(args) >= 3 {
				themeFile = args[2]
			}
			if err := ui.Run(themeFile); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
