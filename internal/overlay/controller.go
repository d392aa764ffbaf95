/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package overlay

import (
	"log/slog"

	applog "elayvate/internal/log"
	"elayvate/internal/telemetry"
)

// CanvasSurface is the editing surface as the Controller sees it. Every
// method is a silent entry point: implementations must not re-emit the
// corresponding user event, which is what breaks the selection ping-pong
// between the two surfaces.
type CanvasSurface interface {
	// AddItemForRecord synthesizes the canvas half for a record created
	// from the list side and attaches it to the record.
	AddItemForRecord(rec *Record)
	// RemoveItem removes the record's canvas half from the surface.
	RemoveItem(rec *Record)
	// ApplySelection marks the record's canvas half without re-emitting.
	ApplySelection(rec *Record, selected bool)
}

// ListSurface is the item list as the Controller sees it; silent entry
// points only, symmetric to CanvasSurface.
type ListSurface interface {
	AddEntryForRecord(rec *Record)
	RemoveEntry(rec *Record)
	ApplySelection(rec *Record, selected bool)
}

// PropertiesSurface shows and edits the selected record's fields.
type PropertiesSurface interface {
	// SetRecord rewires the editor to rec; nil disables and clears it.
	SetRecord(rec *Record)
	// RefreshFrom re-populates the fields from rec without rewiring.
	RefreshFrom(rec *Record)
}

// RenderSurface is the full-screen overlay window's paint list.
type RenderSurface interface {
	Add(rec *Record)
	Remove(rec *Record)
}

// Controller owns the record registry and wires the surfaces together.
// Surfaces call the exported event methods on user-initiated changes,
// passing the raw visual object; the Controller resolves the owning
// record and drives the partner surfaces through their silent entry
// points. All calls happen on the UI event loop; there is no locking.
type Controller struct {
	registry *Registry
	canvas   CanvasSurface
	list     ListSurface
	props    PropertiesSurface
	render   RenderSurface
	log      *slog.Logger
}

// NewController wires a controller to its four surfaces.
func NewController(canvas CanvasSurface, list ListSurface, props PropertiesSurface, render RenderSurface) *Controller {
	return &Controller{
		registry: NewRegistry(),
		canvas:   canvas,
		list:     list,
		props:    props,
		render:   render,
		log:      applog.WithComponent("controller"),
	}
}

// Registry exposes the managed collection, mainly for export and tests.
func (c *Controller) Registry() *Registry { return c.registry }

// ItemAdded handles a user-initiated add on the canvas surface: a new
// record adopts the raw item and the list surface synthesizes its half.
func (c *Controller) ItemAdded(it *Item) {
	rec := NewRecord()
	if err := rec.AttachItem(it); err != nil {
		panic(err) // fresh record, cannot already hold a half
	}
	c.list.AddEntryForRecord(rec)
	c.registry.Add(rec)
	c.render.Add(rec)
	r := it.Rect()
	c.log.Debug("item added from canvas",
		slog.Float64("x", r.X), slog.Float64("y", r.Y),
		slog.Int("open", c.registry.Len()))
	telemetry.Event("item_add", map[string]any{"origin": "canvas", "open": c.registry.Len()})
}

// EntryAdded handles a user-initiated add on the list surface; the
// canvas surface synthesizes the item half for the new record.
func (c *Controller) EntryAdded(e *ListEntry) {
	rec := NewRecord()
	if err := rec.AttachEntry(e); err != nil {
		panic(err)
	}
	c.canvas.AddItemForRecord(rec)
	c.registry.Add(rec)
	c.render.Add(rec)
	c.log.Debug("item added from list", slog.String("label", e.Label()),
		slog.Int("open", c.registry.Len()))
	telemetry.Event("item_add", map[string]any{"origin": "list", "open": c.registry.Len()})
}

// ItemDeleted cascades a canvas-side delete: the list half goes silently
// and the record leaves the registry. A failed lookup is a benign no-op,
// guarding against duplicate deliveries.
func (c *Controller) ItemDeleted(it *Item) {
	rec := c.registry.ByItem(it)
	if rec == nil {
		return
	}
	c.removeRecord(rec, it.Selected())
}

// EntryDeleted cascades a list-side delete symmetrically.
func (c *Controller) EntryDeleted(e *ListEntry) {
	rec := c.registry.ByEntry(e)
	if rec == nil {
		return
	}
	selected := rec.Item() != nil && rec.Item().Selected()
	c.removeRecord(rec, selected)
}

func (c *Controller) removeRecord(rec *Record, wasSelected bool) {
	c.list.RemoveEntry(rec)
	c.canvas.RemoveItem(rec)
	c.render.Remove(rec)
	c.registry.Remove(rec)
	if wasSelected {
		c.props.SetRecord(nil)
	}
	c.log.Debug("item deleted", slog.Int("open", c.registry.Len()))
	telemetry.Event("item_delete", map[string]any{"open": c.registry.Len()})
}

// ItemChanged refreshes the properties surface when the changed item is
// the selected one. Unknown items are ignored.
func (c *Controller) ItemChanged(it *Item) {
	rec := c.registry.ByItem(it)
	if rec == nil {
		return
	}
	if c.registry.Selected() == rec {
		c.props.RefreshFrom(rec)
	}
}

// ItemSelected propagates a canvas-driven selection change onto the list
// surface and the properties editor.
func (c *Controller) ItemSelected(it *Item, selected bool) {
	rec := c.registry.ByItem(it)
	if rec == nil {
		return
	}
	if selected {
		c.props.SetRecord(rec)
		c.list.ApplySelection(rec, true)
	} else {
		c.props.SetRecord(nil)
		c.list.ApplySelection(rec, false)
	}
}

// EntrySelected propagates a list-driven selection change onto the
// canvas surface and the properties editor.
func (c *Controller) EntrySelected(e *ListEntry, selected bool) {
	rec := c.registry.ByEntry(e)
	if rec == nil {
		return
	}
	if selected {
		c.props.SetRecord(rec)
		c.canvas.ApplySelection(rec, true)
	} else {
		c.props.SetRecord(nil)
		c.canvas.ApplySelection(rec, false)
	}
}
