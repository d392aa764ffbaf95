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

import "errors"

// Contract violations in the attach protocol. The Controller attaches
// both halves atomically with record creation, so hitting these at
// runtime is a wiring bug, not a recoverable condition.
var (
	ErrNotAttached     = errors.New("overlay: canvas item not attached to record")
	ErrAlreadyAttached = errors.New("overlay: record half already attached")
)

// Record is the canonical aggregate for one logical overlay item. It owns
// exactly one ListEntry, one Item, and one RenderItem, and exposes a
// unified accessor/mutator surface that reads through to the Item; the
// record keeps no geometry of its own.
type Record struct {
	item   *Item
	entry  *ListEntry
	render *RenderItem
}

// NewRecord creates an empty record; the halves attach as the surfaces
// contribute them.
func NewRecord() *Record { return &Record{} }

// AttachItem binds the canvas half and derives the render mirror from it.
func (r *Record) AttachItem(it *Item) error {
	if r.item != nil {
		return ErrAlreadyAttached
	}
	r.item = it
	r.render = newRenderItem(it)
	return nil
}

// AttachEntry binds the list half.
func (r *Record) AttachEntry(e *ListEntry) error {
	if r.entry != nil {
		return ErrAlreadyAttached
	}
	r.entry = e
	return nil
}

// Item returns the canvas half, nil before attachment.
func (r *Record) Item() *Item { return r.item }

// Entry returns the list half, nil before attachment.
func (r *Record) Entry() *ListEntry { return r.entry }

// Render returns the overlay mirror, nil until the canvas half attaches.
func (r *Record) Render() *RenderItem { return r.render }

// Rect reads the live rectangle through to the canvas item.
func (r *Record) Rect() (Rect, error) {
	if r.item == nil {
		return Rect{}, ErrNotAttached
	}
	return r.item.Rect(), nil
}

// Source reads the live source path through to the canvas item.
func (r *Record) Source() (string, error) {
	if r.item == nil {
		return "", ErrNotAttached
	}
	return r.item.Source(), nil
}

// Name returns the list entry's label, or the default when the list half
// has not been attached yet.
func (r *Record) Name() string {
	if r.entry == nil {
		return DefaultEntryLabel
	}
	return r.entry.Label()
}

// SetRect forwards to the canvas item, which snaps and rescales.
func (r *Record) SetRect(rect Rect) error {
	if r.item == nil {
		return ErrNotAttached
	}
	return r.item.SetRect(rect)
}

// SetSource forwards to the canvas item.
func (r *Record) SetSource(path string) error {
	if r.item == nil {
		return ErrNotAttached
	}
	return r.item.SetSource(path)
}

// SetPosition forwards an already-snapped position to the canvas item
// and mirrors it onto the render item.
func (r *Record) SetPosition(x, y float64) error {
	if r.item == nil {
		return ErrNotAttached
	}
	r.item.SetPosition(x, y)
	r.render.SetPosition(x, y)
	return nil
}
