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
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	applog "elayvate/internal/log"
	"elayvate/internal/overlay"
	"elayvate/internal/theme"
)

const (
	zoomStep    = 1.25
	minZoom     = 0.1
	maxZoom     = 4.0
	defaultZoom = 0.5 // the preview shows the screen at half size
)

// EditorCanvas is the interactive screen preview: a scaled-down screen
// rectangle with grid lines, holding one draggable visual per overlay item.
// It implements both the Controller's silent canvas surface and the item
// Notifier, forwarding raw item events back to the Controller.
type EditorCanvas struct {
	widget.BaseWidget
	ctrl    *overlay.Controller
	mirror  *OverlayWindow
	win     fyne.Window
	palette theme.Theme
	log     *slog.Logger

	cell             int
	defaultCells     int
	screenW, screenH float64

	zoom    float32
	step    float32
	offsetX float32
	offsetY float32

	items []*overlay.Item

	// OnRename, when set, handles the context-menu rename so the list
	// panel can repaint its labels afterwards.
	OnRename func(rec *overlay.Record)

	// interaction state
	dragItem *overlay.Item
	panning  bool
	cursors  cursorScope
}

var (
	_ overlay.CanvasSurface = (*EditorCanvas)(nil)
	_ overlay.Notifier      = (*EditorCanvas)(nil)
	_ desktop.Cursorable    = (*EditorCanvas)(nil)
)

// NewEditorCanvas builds the preview for a screen of the given pixel size
// with the given grid cell.
func NewEditorCanvas(cell int, screenW, screenH float64, palette theme.Theme) *EditorCanvas {
	ec := &EditorCanvas{
		palette:      palette,
		log:          applog.WithComponent("canvas"),
		cell:         cell,
		defaultCells: overlay.DefaultItemCells,
		screenW:      screenW,
		screenH:      screenH,
		zoom:         defaultZoom,
		step:         zoomStep,
	}
	ec.ExtendBaseWidget(ec)
	return ec
}

// Bind wires the canvas to the controller and the overlay window mirror.
// Must be called before the first user event.
func (ec *EditorCanvas) Bind(ctrl *overlay.Controller, mirror *OverlayWindow, win fyne.Window) {
	ec.ctrl = ctrl
	ec.mirror = mirror
	ec.win = win
}

// PreferredSize sets a decent default size for the widget.
func (ec *EditorCanvas) PreferredSize() fyne.Size { return fyne.NewSize(800, 600) }

// ItemChanged implements overlay.Notifier: an item committed new geometry
// or a new source image.
func (ec *EditorCanvas) ItemChanged(it *overlay.Item) {
	if ec.ctrl != nil {
		ec.ctrl.ItemChanged(it)
	}
	if ec.mirror != nil {
		ec.mirror.Repaint()
	}
	ec.Refresh()
}

// ItemSelectionChanged implements overlay.Notifier for user-driven
// selection changes on the canvas.
func (ec *EditorCanvas) ItemSelectionChanged(it *overlay.Item, selected bool) {
	if ec.ctrl != nil {
		ec.ctrl.ItemSelected(it, selected)
	}
	ec.Refresh()
}

// AddItemForRecord synthesizes the canvas half for a record created on
// the list side. Silent entry point.
func (ec *EditorCanvas) AddItemForRecord(rec *overlay.Record) {
	it := ec.newDefaultItem()
	if err := rec.AttachItem(it); err != nil {
		ec.log.Error("attach item", slog.Any("err", err))
		return
	}
	ec.items = append(ec.items, it)
	if ec.mirror != nil {
		ec.mirror.Repaint()
	}
	ec.Refresh()
}

// RemoveItem drops the record's item from the paint list. Silent entry point.
func (ec *EditorCanvas) RemoveItem(rec *overlay.Record) {
	it := rec.Item()
	for i, cand := range ec.items {
		if cand == it {
			ec.items = append(ec.items[:i], ec.items[i+1:]...)
			break
		}
	}
	if ec.dragItem == it {
		ec.dragItem = nil
		ec.cursors.Pop()
	}
	ec.Refresh()
}

// ApplySelection marks the record's item without re-emitting. Silent entry point.
func (ec *EditorCanvas) ApplySelection(rec *overlay.Record, selected bool) {
	if it := rec.Item(); it != nil {
		it.MarkSelected(selected)
	}
	ec.Refresh()
}

// AddItem creates a new item at the given screen position and reports the
// add to the controller. Emitting entry point for the context menu.
func (ec *EditorCanvas) AddItem(x, y float64) {
	it := ec.newItemAt(x, y)
	if it == nil {
		return
	}
	ec.items = append(ec.items, it)
	ec.ctrl.ItemAdded(it)
	if ec.mirror != nil {
		ec.mirror.Repaint()
	}
	ec.Refresh()
}

// SetDefaultItemCells overrides the edge length, in grid cells, of newly
// created items. Non-positive values are ignored.
func (ec *EditorCanvas) SetDefaultItemCells(cells int) {
	if cells > 0 {
		ec.defaultCells = cells
	}
}

func (ec *EditorCanvas) newDefaultItem() *overlay.Item {
	size := float64(ec.cell * ec.defaultCells)
	return ec.newItemAt((ec.screenW-size)/2, (ec.screenH-size)/2)
}

func (ec *EditorCanvas) newItemAt(x, y float64) *overlay.Item {
	size := float64(ec.cell * ec.defaultCells)
	it, err := overlay.NewItem(ec, overlay.Rect{X: x, Y: y, Width: size, Height: size}, ec.cell, ec.screenW, ec.screenH)
	if err != nil {
		ec.log.Error("new item", slog.Any("err", err))
		return nil
	}
	return it
}

// SetZoomStep overrides the per-click zoom factor. Values at or below 1
// are ignored since they would stall or invert the zoom direction.
func (ec *EditorCanvas) SetZoomStep(step float64) {
	if step > 1 {
		ec.step = float32(step)
	}
}

// ZoomIn, ZoomOut and FitToWindow back the View menu and the context menu.
func (ec *EditorCanvas) ZoomIn()  { ec.setZoom(ec.zoom * ec.step) }
func (ec *EditorCanvas) ZoomOut() { ec.setZoom(ec.zoom / ec.step) }

// FitToWindow picks the zoom that fills the widget with the screen preview
// and recenters it.
func (ec *EditorCanvas) FitToWindow() {
	size := ec.Size()
	if size.Width <= 0 || size.Height <= 0 || ec.screenW <= 0 || ec.screenH <= 0 {
		return
	}
	zw := float64(size.Width) / ec.screenW
	zh := float64(size.Height) / ec.screenH
	z := zw
	if zh < zw {
		z = zh
	}
	ec.offsetX, ec.offsetY = 0, 0
	ec.setZoom(float32(z * 0.95))
}

func (ec *EditorCanvas) setZoom(z float32) {
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	ec.zoom = z
	ec.Refresh()
}

// Coordinate helpers: screen <-> widget mapping.
func (ec *EditorCanvas) previewOrigin() (cx, cy, scale float32) {
	size := ec.Size()
	scaledW := float32(ec.screenW) * ec.zoom
	scaledH := float32(ec.screenH) * ec.zoom
	cx = size.Width/2 - scaledW/2 + ec.offsetX
	cy = size.Height/2 - scaledH/2 + ec.offsetY
	return cx, cy, ec.zoom
}

func (ec *EditorCanvas) toScreen(pos fyne.Position) (x, y float64) {
	cx, cy, s := ec.previewOrigin()
	return float64((pos.X - cx) / s), float64((pos.Y - cy) / s)
}

// hitTest returns the top-most item under the given screen point, nil if none.
func (ec *EditorCanvas) hitTest(x, y float64) *overlay.Item {
	for i := len(ec.items) - 1; i >= 0; i-- {
		r := ec.items[i].Rect()
		if x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height {
			return ec.items[i]
		}
	}
	return nil
}

func (ec *EditorCanvas) selected() *overlay.Item {
	for _, it := range ec.items {
		if it.Selected() {
			return it
		}
	}
	return nil
}

// Tapped selects the item under the pointer, or clears the selection on
// empty space. Select() emits, so the controller fans the change out.
func (ec *EditorCanvas) Tapped(e *fyne.PointEvent) {
	x, y := ec.toScreen(e.Position)
	hit := ec.hitTest(x, y)
	if prev := ec.selected(); prev != nil && prev != hit {
		prev.Select(false)
	}
	if hit != nil {
		hit.Select(true)
	}
	ec.Refresh()
}

// TappedSecondary shows the context menu: item actions over an item,
// canvas actions over empty space.
func (ec *EditorCanvas) TappedSecondary(e *fyne.PointEvent) {
	x, y := ec.toScreen(e.Position)
	hit := ec.hitTest(x, y)
	var m *fyne.Menu
	if hit != nil {
		m = fyne.NewMenu("",
			fyne.NewMenuItem("Rename…", func() { ec.renameItem(hit) }),
			fyne.NewMenuItem("Copy Image", func() { copyItemImage(ec.win, hit) }),
			fyne.NewMenuItem("Copy Source Path", func() { copyItemSource(ec.win, hit) }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Delete", func() { ec.ctrl.ItemDeleted(hit) }),
		)
	} else {
		newSub := fyne.NewMenuItem("New", nil)
		newSub.ChildMenu = fyne.NewMenu("New",
			fyne.NewMenuItem("Image", func() { ec.AddItem(snapDown(x, ec.cell), snapDown(y, ec.cell)) }),
		)
		viewSub := fyne.NewMenuItem("View", nil)
		viewSub.ChildMenu = fyne.NewMenu("View",
			fyne.NewMenuItem("Zoom In", ec.ZoomIn),
			fyne.NewMenuItem("Zoom Out", ec.ZoomOut),
			fyne.NewMenuItem("Fill Window", ec.FitToWindow),
		)
		m = fyne.NewMenu("", newSub, viewSub)
	}
	widget.ShowPopUpMenuAtPosition(m, fyne.CurrentApp().Driver().CanvasForObject(ec), e.AbsolutePosition)
}

func (ec *EditorCanvas) renameItem(it *overlay.Item) {
	rec := ec.ctrl.Registry().ByItem(it)
	if rec == nil || rec.Entry() == nil {
		return
	}
	if ec.OnRename != nil {
		ec.OnRename(rec)
		return
	}
	showRenameDialog(ec.win, rec, nil)
}

// Dragged moves the hit item with clamping, or pans the preview when the
// drag starts on empty space.
func (ec *EditorCanvas) Dragged(e *fyne.DragEvent) {
	if ec.dragItem == nil && !ec.panning {
		x, y := ec.toScreen(e.Position)
		if hit := ec.hitTest(x, y); hit != nil {
			if prev := ec.selected(); prev != nil && prev != hit {
				prev.Select(false)
			}
			hit.Select(true)
			hit.BeginDrag()
			ec.dragItem = hit
			ec.cursors.Push(desktop.PointerCursor)
		} else {
			ec.panning = true
			ec.cursors.Push(desktop.CrosshairCursor)
		}
	}
	if ec.dragItem != nil {
		ec.dragItem.DragBy(float64(e.Dragged.DX/ec.zoom), float64(e.Dragged.DY/ec.zoom))
	} else {
		ec.offsetX += e.Dragged.DX
		ec.offsetY += e.Dragged.DY
	}
	ec.Refresh()
}

// Cursor implements desktop.Cursorable so drags show an interaction cursor.
func (ec *EditorCanvas) Cursor() desktop.Cursor { return ec.cursors.Current() }

// DragEnd snaps a finished item drag onto the grid.
func (ec *EditorCanvas) DragEnd() {
	if ec.dragItem != nil || ec.panning {
		ec.cursors.Pop()
	}
	if ec.dragItem != nil {
		if err := ec.dragItem.EndDrag(); err != nil {
			ec.log.Error("end drag", slog.Any("err", err))
		}
		ec.dragItem = nil
	}
	ec.panning = false
}

// Scrolled zooms around the preview center, wheel-up in, wheel-down out.
func (ec *EditorCanvas) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		ec.ZoomIn()
	} else if e.Scrolled.DY < 0 {
		ec.ZoomOut()
	}
}

// snapDown floors a coordinate onto the grid so new items land on a cell corner.
func snapDown(v float64, cell int) float64 {
	if cell <= 0 {
		return v
	}
	c := float64(cell)
	n := float64(int(v / c))
	return n * c
}

// CreateRenderer builds the layered preview: background, screen rectangle,
// grid, items, selection outline.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(ec.palette.Background)

	screen := canvas.NewRectangle(ec.palette.Surface)
	screen.StrokeColor = ec.palette.Border
	screen.StrokeWidth = 2

	sel := canvas.NewRectangle(color.RGBA{})
	sel.StrokeColor = ec.palette.Selection
	sel.StrokeWidth = 2
	sel.Hide()

	return &editorCanvasRenderer{ec: ec, bg: bg, screen: screen, sel: sel}
}

type editorCanvasRenderer struct {
	ec     *EditorCanvas
	bg     *canvas.Rectangle
	screen *canvas.Rectangle
	sel    *canvas.Rectangle

	gridLines []*canvas.Line
	midLines  []*canvas.Line
	images    []*canvas.Image
}

func (r *editorCanvasRenderer) Destroy()           {}
func (r *editorCanvasRenderer) MinSize() fyne.Size { return fyne.NewSize(400, 300) }
func (r *editorCanvasRenderer) Refresh() {
	r.Layout(r.ec.Size())
	canvas.Refresh(r.ec)
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.screen}
	for _, ln := range r.gridLines {
		objs = append(objs, ln)
	}
	for _, ln := range r.midLines {
		objs = append(objs, ln)
	}
	for _, img := range r.images {
		objs = append(objs, img)
	}
	return append(objs, r.sel)
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	ec := r.ec

	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	cx, cy, s := ec.previewOrigin()
	scaledW := float32(ec.screenW) * s
	scaledH := float32(ec.screenH) * s

	r.screen.Resize(fyne.NewSize(scaledW, scaledH))
	r.screen.Move(fyne.NewPos(cx, cy))

	r.layoutGrid(size, cx, cy, s, scaledW, scaledH)
	r.layoutItems(cx, cy, s)
}

func (r *editorCanvasRenderer) layoutGrid(size fyne.Size, cx, cy, s, scaledW, scaledH float32) {
	ec := r.ec
	cell := float32(ec.cell) * s

	need := 0
	if cell > 2 { // grid becomes noise below a few pixels per cell
		need = int(scaledW/cell) + int(scaledH/cell)
	}
	for len(r.gridLines) < need {
		ln := canvas.NewLine(ec.palette.Border)
		ln.StrokeWidth = 1
		r.gridLines = append(r.gridLines, ln)
	}
	for i := range r.gridLines {
		r.gridLines[i].Hide()
	}
	if cell > 2 {
		i := 0
		for x := cell; x < scaledW && i < len(r.gridLines); x += cell {
			ln := r.gridLines[i]
			ln.Position1 = fyne.NewPos(cx+x, cy)
			ln.Position2 = fyne.NewPos(cx+x, cy+scaledH)
			ln.Show()
			i++
		}
		for y := cell; y < scaledH && i < len(r.gridLines); y += cell {
			ln := r.gridLines[i]
			ln.Position1 = fyne.NewPos(cx, cy+y)
			ln.Position2 = fyne.NewPos(cx+scaledW, cy+y)
			ln.Show()
			i++
		}
	}

	// The two midlines are bold and run across the whole widget so the
	// screen center stays visible while panning.
	if len(r.midLines) == 0 {
		for i := 0; i < 2; i++ {
			ln := canvas.NewLine(ec.palette.Hover)
			ln.StrokeWidth = 2
			r.midLines = append(r.midLines, ln)
		}
	}
	midX := cx + scaledW/2
	midY := cy + scaledH/2
	r.midLines[0].Position1 = fyne.NewPos(midX, 0)
	r.midLines[0].Position2 = fyne.NewPos(midX, size.Height)
	r.midLines[1].Position1 = fyne.NewPos(0, midY)
	r.midLines[1].Position2 = fyne.NewPos(size.Width, midY)
}

func (r *editorCanvasRenderer) layoutItems(cx, cy, s float32) {
	ec := r.ec

	for len(r.images) < len(ec.items) {
		img := canvas.NewImageFromImage(nil)
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScaleSmooth
		r.images = append(r.images, img)
	}
	for i := range r.images {
		r.images[i].Hide()
	}

	var selRect *overlay.Item
	for i, it := range ec.items {
		rect := it.Rect()
		img := r.images[i]
		img.Image = it.Image()
		img.Resize(fyne.NewSize(float32(rect.Width)*s, float32(rect.Height)*s))
		img.Move(fyne.NewPos(cx+float32(rect.X)*s, cy+float32(rect.Y)*s))
		img.Show()
		img.Refresh()
		if it.Selected() {
			selRect = it
		}
	}

	if selRect != nil {
		rect := selRect.Rect()
		r.sel.Resize(fyne.NewSize(float32(rect.Width)*s, float32(rect.Height)*s))
		r.sel.Move(fyne.NewPos(cx+float32(rect.X)*s, cy+float32(rect.Y)*s))
		r.sel.Show()
	} else {
		r.sel.Hide()
	}
}
