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

// Registry is the managed collection of open records. Lookup is a linear
// scan matching by half identity; it sits on the hot path of every
// add/delete/select event, which is fine for the tens of items a session
// realistically holds.
type Registry struct {
	records []*Record
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Add appends a record.
func (g *Registry) Add(r *Record) { g.records = append(g.records, r) }

// Remove drops the record, reporting whether it was present.
func (g *Registry) Remove(r *Record) bool {
	for i, rec := range g.records {
		if rec == r {
			g.records = append(g.records[:i], g.records[i+1:]...)
			return true
		}
	}
	return false
}

// ByItem resolves the record owning the given canvas item, nil if none.
func (g *Registry) ByItem(it *Item) *Record {
	for _, rec := range g.records {
		if rec.item == it {
			return rec
		}
	}
	return nil
}

// ByEntry resolves the record owning the given list entry, nil if none.
func (g *Registry) ByEntry(e *ListEntry) *Record {
	for _, rec := range g.records {
		if rec.entry == e {
			return rec
		}
	}
	return nil
}

// Len returns the number of managed records.
func (g *Registry) Len() int { return len(g.records) }

// Records returns the records in insertion order. The slice is shared;
// callers must not mutate it.
func (g *Registry) Records() []*Record { return g.records }

// Selected returns the currently selected record, nil when there is no
// selection. Selection is derived from the canvas items rather than
// stored, so the registry can never disagree with the surfaces.
func (g *Registry) Selected() *Record {
	for _, rec := range g.records {
		if rec.item != nil && rec.item.Selected() {
			return rec
		}
	}
	return nil
}
