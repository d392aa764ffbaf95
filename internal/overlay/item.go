/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package overlay implements the item-synchronization core of the editor:
// a canonical record per overlay item that keeps a list entry, an
// interactive canvas item, and a passive render mirror consistent without
// the three surfaces knowing about each other. Surfaces report raw user
// events to the Controller, which resolves the owning Record and drives
// the silent entry points of the partner surfaces.
package overlay

import (
	"image"
	"math"

	"elayvate/internal/grid"
	"elayvate/internal/imaging"
)

// DefaultItemCells is the edge length, in grid cells, of a freshly
// created item: cellSize*4 square.
const DefaultItemCells = 4

// Rect is an axis-aligned rectangle in screen-preview coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Notifier receives notifications about user-driven changes to an Item.
// The canvas surface hosting the item implements it and forwards to the
// Controller. Silent mutations (the record-driven entry points) bypass it.
type Notifier interface {
	ItemChanged(*Item)
	ItemSelectionChanged(*Item, bool)
}

// Item is the canvas-side representation of an overlay item: a rectangle
// bound to an image source, with drag and selection interaction state.
// All geometry lives here; the owning Record reads through and holds no
// copy of its own.
type Item struct {
	rect     Rect
	source   string
	base     image.Image // decoded source, nil while on placeholder
	img      image.Image // base (or placeholder) stretched to rect size
	selected bool
	dragging bool

	cell             int
	screenW, screenH float64

	notify Notifier
}

// NewItem constructs an item with the given rectangle, showing the white
// placeholder until a source is assigned. The rectangle is applied as
// given; callers snap the position before construction when needed.
func NewItem(notify Notifier, r Rect, cell int, screenW, screenH float64) (*Item, error) {
	if cell <= 0 {
		return nil, grid.ErrBadCellSize
	}
	it := &Item{
		rect:    r,
		cell:    cell,
		screenW: screenW,
		screenH: screenH,
		notify:  notify,
	}
	it.img = imaging.Placeholder(int(r.Width), int(r.Height))
	return it, nil
}

// Rect returns the item's current rectangle.
func (it *Item) Rect() Rect { return it.rect }

// Source returns the current image source path, empty on placeholder.
func (it *Item) Source() string { return it.source }

// Image returns the raster to draw, already stretched to the rectangle.
func (it *Item) Image() image.Image { return it.img }

// Selected reports the selection flag.
func (it *Item) Selected() bool { return it.selected }

// Dragging reports whether a primary-button drag is in progress.
func (it *Item) Dragging() bool { return it.dragging }

// CellSize returns the active grid cell size the item snaps to.
func (it *Item) CellSize() int { return it.cell }

// SetRect snaps position and size independently to the grid, applies the
// rectangle, rescales the current image, and reports the change. Values
// out of the preview bounds are accepted; the next drag clamps them.
func (it *Item) SetRect(r Rect) error {
	x, y, err := grid.SnapPoint(r.X, r.Y, it.cell)
	if err != nil {
		return err
	}
	w, h, err := grid.SnapPoint(r.Width, r.Height, it.cell)
	if err != nil {
		return err
	}
	it.rect = Rect{X: x, Y: y, Width: w, Height: h}
	it.rescale()
	it.changed()
	return nil
}

// SetSource binds the item to the image at path. An empty path reverts to
// the placeholder. A path that fails to decode also reverts to the
// placeholder, clears the stored source, and returns the load error so
// the caller can surface a warning; the item stays drawable either way.
func (it *Item) SetSource(path string) error {
	if path == "" {
		it.source = ""
		it.base = nil
		it.rescale()
		it.changed()
		return nil
	}
	img, err := imaging.Load(path)
	if err != nil {
		it.source = ""
		it.base = nil
		it.rescale()
		it.changed()
		return err
	}
	it.source = path
	it.base = img
	it.rescale()
	it.changed()
	return nil
}

// BeginDrag enters the dragging state on primary-button press.
func (it *Item) BeginDrag() { it.dragging = true }

// DragBy moves the item by the pointer delta, keeping its bounding box
// inside the screen preview. No change notification is sent while the
// drag is in flight; EndDrag reports the final geometry.
func (it *Item) DragBy(dx, dy float64) {
	if !it.dragging {
		return
	}
	maxX := math.Max(0, it.screenW-it.rect.Width)
	maxY := math.Max(0, it.screenH-it.rect.Height)
	it.rect.X = grid.Clamp(it.rect.X+dx, 0, maxX)
	it.rect.Y = grid.Clamp(it.rect.Y+dy, 0, maxY)
}

// EndDrag leaves the dragging state, snaps the final position to the
// grid, and reports the change.
func (it *Item) EndDrag() error {
	if !it.dragging {
		return nil
	}
	it.dragging = false
	x, y, err := grid.SnapPoint(it.rect.X, it.rect.Y, it.cell)
	if err != nil {
		return err
	}
	it.rect.X, it.rect.Y = x, y
	it.changed()
	return nil
}

// SetPosition moves the item without snapping or clamping. Used by the
// record's mirrored position writes; the values are already snapped.
func (it *Item) SetPosition(x, y float64) {
	it.rect.X, it.rect.Y = x, y
	it.changed()
}

// Select toggles the selection flag and reports the new state. This is
// the emitting entry point for surface-driven (user) selection changes.
func (it *Item) Select(selected bool) {
	if it.selected == selected {
		return
	}
	it.selected = selected
	if it.notify != nil {
		it.notify.ItemSelectionChanged(it, selected)
	}
}

// MarkSelected applies a selection state without reporting it. The
// Controller uses it to propagate selection that originated on the list
// side, which is what keeps the two surfaces from ping-ponging.
func (it *Item) MarkSelected(selected bool) { it.selected = selected }

func (it *Item) rescale() {
	w, h := int(it.rect.Width), int(it.rect.Height)
	if it.base != nil {
		it.img = imaging.Stretch(it.base, w, h)
		return
	}
	it.img = imaging.Placeholder(w, h)
}

func (it *Item) changed() {
	if it.notify != nil {
		it.notify.ItemChanged(it)
	}
}
