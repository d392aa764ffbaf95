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

func TestRegistryLookupByHalves(t *testing.T) {
	g := NewRegistry()
	it := newTestItem(t, nil)
	e := NewListEntry("one")
	rec := NewRecord()
	if err := rec.AttachItem(it); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	if err := rec.AttachEntry(e); err != nil {
		t.Fatalf("AttachEntry: %v", err)
	}
	g.Add(rec)

	if g.ByItem(it) != rec {
		t.Fatalf("ByItem failed to resolve record")
	}
	if g.ByEntry(e) != rec {
		t.Fatalf("ByEntry failed to resolve record")
	}
	if g.ByItem(newTestItem(t, nil)) != nil {
		t.Fatalf("foreign item must resolve to nil")
	}
	if g.ByEntry(NewListEntry("other")) != nil {
		t.Fatalf("foreign entry must resolve to nil")
	}
}

func TestRegistryRemove(t *testing.T) {
	g := NewRegistry()
	rec := NewRecord()
	g.Add(rec)
	if !g.Remove(rec) {
		t.Fatalf("Remove reported record missing")
	}
	if g.Remove(rec) {
		t.Fatalf("double Remove must report false")
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty registry, len=%d", g.Len())
	}
}

func TestRegistrySelectedIsDerived(t *testing.T) {
	g := NewRegistry()
	a := NewRecord()
	b := NewRecord()
	itA, itB := newTestItem(t, nil), newTestItem(t, nil)
	if err := a.AttachItem(itA); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	if err := b.AttachItem(itB); err != nil {
		t.Fatalf("AttachItem: %v", err)
	}
	g.Add(a)
	g.Add(b)

	if g.Selected() != nil {
		t.Fatalf("no selection expected initially")
	}
	itB.MarkSelected(true)
	if g.Selected() != b {
		t.Fatalf("selection must be derived from the items")
	}
	itB.MarkSelected(false)
	if g.Selected() != nil {
		t.Fatalf("clearing the item flag must clear the derived selection")
	}
}
