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

import "image"

// RenderItem is the overlay-window mirror of a canvas Item. It holds a
// non-owning reference and re-derives its output from the item on every
// snapshot; the only state of its own is the mirrored position the
// record writes for immediacy between paint cycles.
type RenderItem struct {
	item *Item
	x, y float64
}

func newRenderItem(item *Item) *RenderItem {
	r := item.Rect()
	return &RenderItem{item: item, x: r.X, y: r.Y}
}

// SetPosition mirrors a position write from the owning record. The next
// Snapshot re-derives from the item anyway; this keeps the overlay
// current between paints.
func (ri *RenderItem) SetPosition(x, y float64) { ri.x, ri.y = x, y }

// Snapshot returns the position and image to paint. The image is nil
// until the bound item has a committed source: the overlay never shows
// the editing placeholder.
func (ri *RenderItem) Snapshot() (x, y float64, img image.Image) {
	r := ri.item.Rect()
	ri.x, ri.y = r.X, r.Y
	if ri.item.Source() == "" {
		return ri.x, ri.y, nil
	}
	return ri.x, ri.y, ri.item.Image()
}
