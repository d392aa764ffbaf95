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
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"elayvate/internal/overlay"
)

// PropertiesPanel edits the selected record's geometry and image source.
// Field commits write through the record facade; the resulting change
// notification loops back as RefreshFrom, which only repaints text, so
// there is no editing feedback cycle. Invalid input silently reverts to
// the record's current value.
type PropertiesPanel struct {
	win fyne.Window

	rec        *overlay.Record
	x, y, w, h *widget.Entry
	source     *widget.Entry
	browse     *widget.Button
	view       fyne.CanvasObject

	populating bool
	browsing   bool
}

var _ overlay.PropertiesSurface = (*PropertiesPanel)(nil)

// NewPropertiesPanel builds the panel, initially disabled until a record
// is selected.
func NewPropertiesPanel(win fyne.Window) *PropertiesPanel {
	pp := &PropertiesPanel{win: win}

	pp.x = pp.newGeometryEntry(func(r overlay.Rect, v float64) overlay.Rect { r.X = v; return r })
	pp.y = pp.newGeometryEntry(func(r overlay.Rect, v float64) overlay.Rect { r.Y = v; return r })
	pp.w = pp.newGeometryEntry(func(r overlay.Rect, v float64) overlay.Rect { r.Width = v; return r })
	pp.h = pp.newGeometryEntry(func(r overlay.Rect, v float64) overlay.Rect { r.Height = v; return r })

	pp.source = widget.NewEntry()
	pp.source.Disable() // read-only, set through the picker
	pp.browse = widget.NewButton("Browse…", pp.pickSource)

	form := widget.NewForm(
		widget.NewFormItem("X", pp.x),
		widget.NewFormItem("Y", pp.y),
		widget.NewFormItem("Width", pp.w),
		widget.NewFormItem("Height", pp.h),
		widget.NewFormItem("Source", container.NewBorder(nil, nil, nil, pp.browse, pp.source)),
	)
	pp.view = container.NewVBox(widget.NewLabel("Properties"), widget.NewSeparator(), form)
	pp.SetRecord(nil)
	return pp
}

// View returns the panel's root canvas object for window layout.
func (pp *PropertiesPanel) View() fyne.CanvasObject { return pp.view }

func (pp *PropertiesPanel) newGeometryEntry(apply func(overlay.Rect, float64) overlay.Rect) *widget.Entry {
	e := widget.NewEntry()
	e.OnSubmitted = func(text string) {
		if pp.populating || pp.rec == nil {
			return
		}
		rect, err := pp.rec.Rect()
		if err != nil {
			return
		}
		v, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			pp.RefreshFrom(pp.rec)
			return
		}
		if err := pp.rec.SetRect(apply(rect, v)); err != nil {
			pp.RefreshFrom(pp.rec)
		}
	}
	return e
}

func (pp *PropertiesPanel) pickSource() {
	if pp.rec == nil || pp.browsing {
		return
	}
	pp.browsing = true
	open := dialog.NewFileOpen(func(ur fyne.URIReadCloser, err error) {
		pp.browsing = false
		if err != nil || ur == nil {
			return
		}
		path := ur.URI().Path()
		_ = ur.Close()
		if pp.rec == nil {
			return
		}
		if err := pp.rec.SetSource(path); err != nil {
			dialog.ShowError(fmt.Errorf("load image: %w", err), pp.win)
		}
		pp.RefreshFrom(pp.rec)
	}, pp.win)
	open.SetFilter(fstorage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".gif"}))
	open.SetOnClosed(func() { pp.browsing = false })
	open.Show()
}

// SetRecord rewires the editor to rec; nil disables and clears the panel.
// Rewiring to the already-shown record just refreshes. Silent entry point.
func (pp *PropertiesPanel) SetRecord(rec *overlay.Record) {
	pp.rec = rec
	if rec == nil {
		pp.populating = true
		for _, e := range []*widget.Entry{pp.x, pp.y, pp.w, pp.h} {
			e.SetText("")
			e.Disable()
		}
		pp.source.SetText("")
		pp.browse.Disable()
		pp.populating = false
		return
	}
	for _, e := range []*widget.Entry{pp.x, pp.y, pp.w, pp.h} {
		e.Enable()
	}
	pp.browse.Enable()
	pp.RefreshFrom(rec)
}

// RefreshFrom re-populates the fields from rec without rewiring.
func (pp *PropertiesPanel) RefreshFrom(rec *overlay.Record) {
	if rec == nil || rec != pp.rec {
		return
	}
	rect, err := rec.Rect()
	if err != nil {
		return
	}
	src, _ := rec.Source()
	pp.populating = true
	pp.x.SetText(formatCoord(rect.X))
	pp.y.SetText(formatCoord(rect.Y))
	pp.w.SetText(formatCoord(rect.Width))
	pp.h.SetText(formatCoord(rect.Height))
	pp.source.SetText(src)
	pp.populating = false
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
