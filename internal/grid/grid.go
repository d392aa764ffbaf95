/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package grid provides the grid and geometry helpers shared by the editor
// surfaces: cell-size derivation from the screen resolution, snapping of
// coordinates to the active grid, and range clamping.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCellSize is returned when a snap is requested with a cell size
// that is zero or negative.
var ErrBadCellSize = errors.New("grid: cell size must be positive")

// CellSizeFor derives the grid cell size from the sum of the screen's width
// and height. Only the leading decimal digit of the sum matters: the cell
// size is that digit times ten. A 1920x1080 preview scaled to half size
// yields 960+540=1500 -> 10; a sum of 3000 yields 30, and 2999 yields 20.
func CellSizeFor(dimensionSum int) (int, error) {
	if dimensionSum <= 0 {
		return 0, fmt.Errorf("grid: dimension sum %d must be positive", dimensionSum)
	}
	lead := dimensionSum
	for lead >= 10 {
		lead /= 10
	}
	return lead * 10, nil
}

// Snap rounds v to the nearest multiple of cell.
func Snap(v float64, cell int) (float64, error) {
	if cell <= 0 {
		return 0, ErrBadCellSize
	}
	c := float64(cell)
	return math.Round(v/c) * c, nil
}

// SnapPoint snaps both coordinates independently to the grid.
func SnapPoint(x, y float64, cell int) (sx, sy float64, err error) {
	sx, err = Snap(x, cell)
	if err != nil {
		return 0, 0, err
	}
	sy, err = Snap(y, cell)
	if err != nil {
		return 0, 0, err
	}
	return sx, sy, nil
}

// Clamp restricts n to [floor, ceil]. The bounds must be ordered; an
// inverted range is a programming error and panics rather than silently
// favoring the floor.
func Clamp(n, floor, ceil float64) float64 {
	if floor > ceil {
		panic(fmt.Sprintf("grid: inverted clamp range [%v, %v]", floor, ceil))
	}
	return math.Min(math.Max(n, floor), ceil)
}
