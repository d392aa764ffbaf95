/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders the current overlay composition to files. A snapshot
// is the overlay exactly as the render surface would show it: sourced items
// composited at their screen positions over a transparent background.
package export

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"elayvate/internal/overlay"
)

// Compose flattens the given records into a single RGBA raster of the screen
// size. Items without an image source are skipped, matching the overlay
// window which shows nothing for them.
func Compose(recs []*overlay.Record, screenW, screenH int) (*image.RGBA, error) {
	if screenW <= 0 || screenH <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", screenW, screenH)
	}
	out := image.NewRGBA(image.Rect(0, 0, screenW, screenH))
	for _, rec := range recs {
		ri := rec.Render()
		if ri == nil {
			continue
		}
		x, y, img := ri.Snapshot()
		if img == nil {
			continue
		}
		b := img.Bounds()
		dst := image.Rect(0, 0, b.Dx(), b.Dy()).Add(image.Pt(int(math.Round(x)), int(math.Round(y))))
		draw.Draw(out, dst, img, b.Min, draw.Over)
	}
	return out, nil
}
