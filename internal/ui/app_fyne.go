//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"elayvate/internal/config"
	"elayvate/internal/crash"
	"elayvate/internal/export"
	"elayvate/internal/grid"
	applog "elayvate/internal/log"
	"elayvate/internal/overlay"
	"elayvate/internal/telemetry"
	"elayvate/internal/theme"
	"elayvate/internal/version"
)

// Run starts the Fyne-based editor: the item list, the screen preview
// canvas, the properties panel, and the hidden overlay window, all wired
// through one controller. themeOverride, when non-empty, takes precedence
// over the configured theme file.
func Run(themeOverride string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()))

	var ctrl *overlay.Controller
	defer func() {
		crash.Recover(func() string {
			if ctrl == nil {
				return "no session"
			}
			return fmt.Sprintf("%d overlay items", ctrl.Registry().Len())
		})
	}()

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	palette := resolveTheme(l, cfg, themeOverride)

	screenW := float64(cfg.Overlay.ScreenWidth)
	screenH := float64(cfg.Overlay.ScreenHeight)
	if screenW <= 0 || screenH <= 0 {
		screenW, screenH = 1920, 1080
	}
	cell, err := grid.CellSizeFor(int(screenW + screenH))
	if err != nil {
		l.Warn("cell size fallback", slog.Any("err", err))
		cell = 10
	}
	l.Info("screen preview configured",
		slog.Float64("width", screenW), slog.Float64("height", screenH), slog.Int("cell", cell))

	fyneApp := app.NewWithID("elayvate")
	fyneApp.Settings().SetTheme(newEditorTheme(palette))
	w := fyneApp.NewWindow("Elayvate")

	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1200)
	winH := prefs.IntWithFallback("window.height", 800)
	if winW < 800 {
		winW = 800
	}
	if winH < 600 {
		winH = 600
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	ow := NewOverlayWindow(fyneApp)
	ec := NewEditorCanvas(cell, screenW, screenH, palette)
	ec.SetZoomStep(cfg.Overlay.ZoomStep)
	ec.SetDefaultItemCells(cfg.Overlay.DefaultItemCells)
	il := NewItemList(w)
	pp := NewPropertiesPanel(w)
	ctrl = overlay.NewController(ec, il, pp, ow)
	ec.Bind(ctrl, ow, w)
	ec.OnRename = func(rec *overlay.Record) { showRenameDialog(w, rec, il.RefreshEntries) }
	il.Bind(ctrl)

	status := widget.NewLabel("Ready")

	inner := container.NewHSplit(ec, pp.View())
	inner.SetOffset(0.75)
	split := container.NewHSplit(il.View(), inner)
	split.SetOffset(0.2)
	w.SetContent(container.NewBorder(nil, status, nil, nil, split))

	// Global overlay toggle; an in-window shortcut backs it up when the
	// platform refuses the system-wide registration.
	unregister, err := registerOverlayHotkey(cfg.Overlay.ToggleHotkey, ow.Toggle)
	if err != nil {
		l.Warn("global hotkey unavailable", slog.Any("err", err))
		status.SetText(fmt.Sprintf("Overlay hotkey %s is window-local only", cfg.Overlay.ToggleHotkey))
	}
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyP, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		ow.Toggle()
	})

	buildMainMenu(w, ec, il, ow, ctrl, screenW, screenH)

	w.SetOnClosed(func() {
		size := w.Canvas().Size()
		prefs.SetInt("window.width", int(size.Width))
		prefs.SetInt("window.height", int(size.Height))
		if unregister != nil {
			unregister()
		}
		ow.Close()
	})

	telemetry.Event("app_start", map[string]any{"os": runtime.GOOS})
	w.ShowAndRun()
	return nil
}

func resolveTheme(l *slog.Logger, cfg config.AppConfig, override string) theme.Theme {
	ref := strings.TrimSpace(override)
	if ref == "" {
		ref = strings.TrimSpace(cfg.General.Theme)
	}
	if ref == "" || strings.EqualFold(ref, "default") {
		return theme.Default()
	}
	th, err := theme.Load(ref)
	if err != nil {
		l.Warn("theme load failed, using default", slog.String("path", ref), slog.Any("err", err))
		return theme.Default()
	}
	return th
}

func buildMainMenu(w fyne.Window, ec *EditorCanvas, il *ItemList, ow *OverlayWindow, ctrl *overlay.Controller, screenW, screenH float64) {
	newItem := fyne.NewMenuItem("New Image", func() { il.AddEntry() })
	newItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}

	// Open and Save mirror the original menu but stay inert: overlay
	// compositions are not persisted.
	openItem := fyne.NewMenuItem("Open…", nil)
	openItem.Disabled = true
	saveItem := fyne.NewMenuItem("Save", nil)
	saveItem.Disabled = true

	exportPNGItem := fyne.NewMenuItem("Export Snapshot as PNG…", func() {
		saveSnapshot(w, ctrl, screenW, screenH, "png")
	})
	exportPDFItem := fyne.NewMenuItem("Export Snapshot as PDF…", func() {
		saveSnapshot(w, ctrl, screenW, screenH, "pdf")
	})

	quitItem := fyne.NewMenuItem("Quit", func() { w.Close() })
	quitItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}
	fileMenu := fyne.NewMenu("File", newItem, fyne.NewMenuItemSeparator(), openItem, saveItem,
		fyne.NewMenuItemSeparator(), exportPNGItem, exportPDFItem, fyne.NewMenuItemSeparator(), quitItem)

	zoomInItem := fyne.NewMenuItem("Zoom In", ec.ZoomIn)
	zoomInItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyEqual, Modifier: fyne.KeyModifierControl}
	zoomOutItem := fyne.NewMenuItem("Zoom Out", ec.ZoomOut)
	zoomOutItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyMinus, Modifier: fyne.KeyModifierControl}
	fillItem := fyne.NewMenuItem("Fill Window", ec.FitToWindow)
	overlayItem := fyne.NewMenuItem("Toggle Overlay", ow.Toggle)
	overlayItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyP, Modifier: fyne.KeyModifierControl}
	viewMenu := fyne.NewMenu("View", zoomInItem, zoomOutItem, fillItem, fyne.NewMenuItemSeparator(), overlayItem)

	loadThemeItem := fyne.NewMenuItem("Load Theme…", func() {
		open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			path := r.URI().Path()
			_ = r.Close()
			th, err := theme.Load(path)
			if err != nil {
				dialog.ShowError(fmt.Errorf("load theme: %w", err), w)
				return
			}
			fyne.CurrentApp().Settings().SetTheme(newEditorTheme(th))
		}, w)
		open.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		open.Show()
	})
	settingsMenu := fyne.NewMenu("Settings", loadThemeItem)

	aboutItem := fyne.NewMenuItem("About Elayvate", func() {
		dialog.ShowInformation("About Elayvate",
			fmt.Sprintf("Elayvate %s\nA screen overlay composer.", version.String()), w)
	})
	helpMenu := fyne.NewMenu("Help", aboutItem)

	w.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, settingsMenu, helpMenu))
}

func saveSnapshot(w fyne.Window, ctrl *overlay.Controller, screenW, screenH float64, format string) {
	save := dialog.NewFileSave(func(uw fyne.URIWriteCloser, err error) {
		if err != nil || uw == nil {
			return
		}
		path := uw.URI().Path()
		_ = uw.Close()
		recs := ctrl.Registry().Records()
		if format == "pdf" {
			err = export.WriteSnapshotPDF(recs, int(screenW), int(screenH), path)
		} else {
			err = export.WriteSnapshotPNG(recs, int(screenW), int(screenH), path)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("export snapshot: %w", err), w)
			return
		}
		telemetry.Event("export", map[string]any{"format": format, "items": len(recs)})
	}, w)
	save.SetFileName("overlay-snapshot." + format)
	save.SetFilter(fstorage.NewExtensionFileFilter([]string{"." + format}))
	save.Show()
}
