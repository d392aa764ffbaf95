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
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"elayvate/internal/clipboard"
	"elayvate/internal/overlay"
)

// showRenameDialog edits the record's list label. Empty input keeps the
// current name; onDone runs only after a successful rename.
func showRenameDialog(win fyne.Window, rec *overlay.Record, onDone func()) {
	e := rec.Entry()
	if e == nil {
		return
	}
	entry := widget.NewEntry()
	entry.SetText(e.Label())
	items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	dialog.ShowForm("Rename Item", "Rename", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(entry.Text)
		if name == "" || name == e.Label() {
			return
		}
		e.Rename(name)
		if onDone != nil {
			onDone()
		}
	}, win)
}

// copyItemImage publishes the item's current raster to the system
// clipboard; unsourced items copy their white placeholder.
func copyItemImage(win fyne.Window, it *overlay.Item) {
	img := it.Image()
	if img == nil {
		return
	}
	if err := clipboard.WriteImage(img); err != nil {
		dialog.ShowError(fmt.Errorf("copy image: %w", err), win)
	}
}

// copyItemSource puts the item's source path on the system clipboard.
// Unsourced items have nothing to copy.
func copyItemSource(win fyne.Window, it *overlay.Item) {
	src := it.Source()
	if src == "" {
		return
	}
	if err := clipboard.WriteText(src); err != nil {
		dialog.ShowError(fmt.Errorf("copy source path: %w", err), win)
	}
}
