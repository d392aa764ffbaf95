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

// DefaultEntryLabel names freshly created items in the list surface.
const DefaultEntryLabel = "Image"

// ListEntry is the list-side handle of an overlay item: a display label
// and nothing else. Geometry and imagery live in the paired Item.
type ListEntry struct {
	label string
}

// NewListEntry creates an entry, substituting the default label for an
// empty one.
func NewListEntry(label string) *ListEntry {
	if label == "" {
		label = DefaultEntryLabel
	}
	return &ListEntry{label: label}
}

// Label returns the display label.
func (e *ListEntry) Label() string { return e.label }

// Rename replaces the display label.
func (e *ListEntry) Rename(label string) { e.label = label }
