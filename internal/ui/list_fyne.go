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
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"elayvate/internal/overlay"
)

// ItemList is the "Items" side panel: one row per record, selection synced
// with the canvas through the controller. The silent flag masks selection
// callbacks triggered by ApplySelection so controller-driven changes never
// re-emit as user events.
type ItemList struct {
	ctrl *overlay.Controller
	win  fyne.Window

	entries  []*overlay.ListEntry
	list     *widget.List
	view     fyne.CanvasObject
	silent   bool
	selected int // index into entries, -1 if none
}

var _ overlay.ListSurface = (*ItemList)(nil)

// NewItemList builds the panel with its header and the New/Delete actions.
func NewItemList(win fyne.Window) *ItemList {
	il := &ItemList{win: win, selected: -1}

	il.list = widget.NewList(
		func() int { return len(il.entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= 0 && int(i) < len(il.entries) {
				o.(*widget.Label).SetText(il.entries[i].Label())
			} else {
				o.(*widget.Label).SetText("")
			}
		},
	)
	il.list.OnSelected = func(id widget.ListItemID) {
		il.selected = int(id)
		if il.silent || il.ctrl == nil {
			return
		}
		if il.selected >= 0 && il.selected < len(il.entries) {
			il.ctrl.EntrySelected(il.entries[il.selected], true)
		}
	}
	il.list.OnUnselected = func(id widget.ListItemID) {
		idx := int(id)
		if il.selected == idx {
			il.selected = -1
		}
		if il.silent || il.ctrl == nil {
			return
		}
		if idx >= 0 && idx < len(il.entries) {
			il.ctrl.EntrySelected(il.entries[idx], false)
		}
	}

	newBtn := widget.NewButton("New Image", func() { il.AddEntry() })
	delBtn := widget.NewButton("Delete", func() { il.DeleteSelected() })
	renameBtn := widget.NewButton("Rename…", func() { il.RenameSelected() })
	actions := container.NewVBox(widget.NewSeparator(), newBtn, renameBtn, delBtn)

	header := container.NewVBox(widget.NewLabel("Items"), widget.NewSeparator())
	il.view = container.NewBorder(header, actions, nil, nil, il.list)
	return il
}

// Bind wires the panel to the controller. Must be called before the first
// user event.
func (il *ItemList) Bind(ctrl *overlay.Controller) { il.ctrl = ctrl }

// View returns the panel's root canvas object for window layout.
func (il *ItemList) View() fyne.CanvasObject { return il.view }

// AddEntry creates a new entry with the default label and reports the add.
// Emitting entry point for the New Image action.
func (il *ItemList) AddEntry() {
	e := overlay.NewListEntry("")
	il.entries = append(il.entries, e)
	il.ctrl.EntryAdded(e)
	il.list.Refresh()
}

// DeleteSelected reports a delete of the currently selected entry.
func (il *ItemList) DeleteSelected() {
	if il.selected < 0 || il.selected >= len(il.entries) {
		return
	}
	il.ctrl.EntryDeleted(il.entries[il.selected])
}

// RenameSelected opens the rename dialog for the selected entry.
func (il *ItemList) RenameSelected() {
	if il.selected < 0 || il.selected >= len(il.entries) {
		return
	}
	rec := il.ctrl.Registry().ByEntry(il.entries[il.selected])
	if rec == nil {
		return
	}
	showRenameDialog(il.win, rec, il.list.Refresh)
}

// AddEntryForRecord synthesizes the list half for a record created on the
// canvas side. Silent entry point.
func (il *ItemList) AddEntryForRecord(rec *overlay.Record) {
	e := overlay.NewListEntry("")
	if err := rec.AttachEntry(e); err != nil {
		return
	}
	il.entries = append(il.entries, e)
	il.list.Refresh()
}

// RemoveEntry drops the record's entry from the panel. Silent entry point.
func (il *ItemList) RemoveEntry(rec *overlay.Record) {
	e := rec.Entry()
	for i, cand := range il.entries {
		if cand != e {
			continue
		}
		if il.selected == i {
			il.silent = true
			il.list.UnselectAll()
			il.silent = false
			il.selected = -1
		}
		il.entries = append(il.entries[:i], il.entries[i+1:]...)
		break
	}
	il.list.Refresh()
}

// ApplySelection marks the record's row without re-emitting. Silent entry point.
func (il *ItemList) ApplySelection(rec *overlay.Record, selected bool) {
	e := rec.Entry()
	for i, cand := range il.entries {
		if cand != e {
			continue
		}
		il.silent = true
		if selected {
			il.list.Select(widget.ListItemID(i))
		} else {
			il.list.Unselect(widget.ListItemID(i))
		}
		il.silent = false
		break
	}
}

// RefreshEntries repaints the rows, picking up renamed labels.
func (il *ItemList) RefreshEntries() { il.list.Refresh() }
