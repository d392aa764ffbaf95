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

import "testing"

func TestRecordAccessorsBeforeAttachment(t *testing.T) {
	rec := NewRecord()
	if _, err := rec.Rect(); err != ErrNotAttached {
		t.Fatalf("Rect before attach: want ErrNotAttached, got %v", err)
	}
	if _, err := rec.Source(); err != ErrNotAttached {
		t.Fatalf("Source before attach: want ErrNotAttached, got %v", err)
	}
	if err := rec.SetRect(Rect{}); err != ErrNotAttached {
		t.Fatalf("SetRect before attach: want ErrNotAttached, got %v", err)
	}
	if err := rec.SetSource("x"); err != ErrNotAttached {
		t.Fatalf("SetSource before attach: want ErrNotAttached, got %v", err)
	}
	if err := rec.SetPosition(0, 0); err != ErrNotAttached {
		t.Fatalf("SetPosition before attach: want ErrNotAttached, got %v", err)
	}
	if rec.Name() != DefaultEntryLabel {
		t.Fatalf("Name before attach should be the default, got %q", rec.Name())
	}
}

func TestRecordIsReadThroughFacade(t *testing.T) {
	rec := NewRecord()
	it := newTestItem(t, nil)
	if err := rec.AttachItem(it); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	if rec.Render() == nil {
		t.Fatalf("render mirror must exist once the canvas half attaches")
	}

	// Mutate through the item; the record must observe live state.
	it.BeginDrag()
	it.DragBy(40, 0)
	r, err := rec.Rect()
	if err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if r.X != it.Rect().X {
		t.Fatalf("record holds a stale copy: %v vs %v", r.X, it.Rect().X)
	}

	// Mutate through the record; the item must change.
	if err := rec.SetRect(Rect{X: 203, Y: 197, Width: 80, Height: 80}); err != nil {
		t.Fatalf("SetRect: %v", err)
	}
	if got := it.Rect(); got.X != 200 || got.Y != 200 {
		t.Fatalf("record mutation must snap and apply to item, got %+v", got)
	}
}

func TestRecordDoubleAttachIsAnError(t *testing.T) {
	rec := NewRecord()
	if err := rec.AttachItem(newTestItem(t, nil)); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	if err := rec.AttachItem(newTestItem(t, nil)); err != ErrAlreadyAttached {
		t.Fatalf("second AttachItem: want ErrAlreadyAttached, got %v", err)
	}
	if err := rec.AttachEntry(NewListEntry("")); err != nil {
		t.Fatalf("AttachEntry: %v", err)
	}
	if err := rec.AttachEntry(NewListEntry("")); err != ErrAlreadyAttached {
		t.Fatalf("second AttachEntry: want ErrAlreadyAttached, got %v", err)
	}
}

func TestRecordSetPositionMirrorsToRender(t *testing.T) {
	rec := NewRecord()
	it := newTestItem(t, nil)
	if err := rec.AttachItem(it); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	if err := rec.SetPosition(240, 60); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	x, y, img := rec.Render().Snapshot()
	if x != 240 || y != 60 {
		t.Fatalf("render mirror at (%v,%v), want (240,60)", x, y)
	}
	if img != nil {
		t.Fatalf("overlay must not show the placeholder for sourceless items")
	}
}

func TestRecordNameFollowsEntry(t *testing.T) {
	rec := NewRecord()
	e := NewListEntry("")
	if err := rec.AttachEntry(e); err != nil {
		t.Fatalf("AttachEntry: %v", err)
	}
	if rec.Name() != DefaultEntryLabel {
		t.Fatalf("default label expected, got %q", rec.Name())
	}
	e.Rename("HUD")
	if rec.Name() != "HUD" {
		t.Fatalf("rename not visible through record, got %q", rec.Name())
	}
}
