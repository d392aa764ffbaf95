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

import "fyne.io/fyne/v2/driver/desktop"

// cursorScope is a small stack of pointer cursors with guaranteed
// restore: every Push is balanced by a Pop back to whatever cursor was
// active before, so nested interactions cannot leave a stale cursor
// behind. Widgets expose the top entry through desktop.Cursorable.
type cursorScope struct {
	stack []desktop.Cursor
}

// Push activates c until the matching Pop.
func (cs *cursorScope) Push(c desktop.Cursor) {
	cs.stack = append(cs.stack, c)
}

// Pop restores the previously active cursor. Popping an empty scope is
// a no-op.
func (cs *cursorScope) Pop() {
	if n := len(cs.stack); n > 0 {
		cs.stack = cs.stack[:n-1]
	}
}

// Current returns the active cursor, the default when nothing is pushed.
func (cs *cursorScope) Current() desktop.Cursor {
	if n := len(cs.stack); n > 0 {
		return cs.stack[n-1]
	}
	return desktop.DefaultCursor
}
