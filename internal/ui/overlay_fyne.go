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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"elayvate/internal/overlay"
)

// OverlayWindow is the full-screen presentation window: a borderless
// splash surface painting the sourced items 1:1 at their screen
// coordinates. It is the Controller's render surface and holds no
// interactive widgets; all edits happen in the editor window.
type OverlayWindow struct {
	win     fyne.Window
	content *fyne.Container
	records []*overlay.Record
	visible bool
}

var _ overlay.RenderSurface = (*OverlayWindow)(nil)

// NewOverlayWindow creates the hidden overlay window. On desktop drivers
// it is a borderless splash window; elsewhere it degrades to a plain
// full-screen window. Whether the window stays above others and passes
// clicks through depends on the window manager; Fyne offers no portable
// always-on-top or input-transparency control.
func NewOverlayWindow(a fyne.App) *OverlayWindow {
	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = a.NewWindow("Elayvate")
	}
	w.SetPadded(false)
	w.SetFullScreen(true)

	bg := canvas.NewRectangle(color.Black)
	content := container.NewWithoutLayout(bg)
	w.SetContent(content)

	return &OverlayWindow{win: w, content: content}
}

// Add registers a record with the paint list. Silent entry point.
func (ow *OverlayWindow) Add(rec *overlay.Record) {
	ow.records = append(ow.records, rec)
	ow.Repaint()
}

// Remove drops a record from the paint list. Silent entry point.
func (ow *OverlayWindow) Remove(rec *overlay.Record) {
	for i, cand := range ow.records {
		if cand == rec {
			ow.records = append(ow.records[:i], ow.records[i+1:]...)
			break
		}
	}
	ow.Repaint()
}

// Toggle shows or hides the overlay. Bound to the global hotkey and the
// View menu.
func (ow *OverlayWindow) Toggle() {
	ow.visible = !ow.visible
	if ow.visible {
		ow.Repaint()
		ow.win.Show()
	} else {
		ow.win.Hide()
	}
}

// Visible reports whether the overlay is currently shown.
func (ow *OverlayWindow) Visible() bool { return ow.visible }

// Close tears the window down on application exit.
func (ow *OverlayWindow) Close() { ow.win.Close() }

// Repaint rebuilds the paint list from the render mirrors. Cheap enough
// to run on every geometry commit; unsourced items contribute nothing.
func (ow *OverlayWindow) Repaint() {
	objs := ow.content.Objects[:1] // keep the background
	if bg, ok := objs[0].(*canvas.Rectangle); ok {
		bg.Move(fyne.NewPos(0, 0))
		bg.Resize(ow.win.Canvas().Size())
	}
	for _, rec := range ow.records {
		ri := rec.Render()
		if ri == nil {
			continue
		}
		x, y, img := ri.Snapshot()
		if img == nil {
			continue
		}
		rect, err := rec.Rect()
		if err != nil {
			continue
		}
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillStretch
		ci.ScaleMode = canvas.ImageScaleSmooth
		ci.Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))
		ci.Move(fyne.NewPos(float32(x), float32(y)))
		objs = append(objs, ci)
	}
	ow.content.Objects = objs
	ow.content.Refresh()
}
