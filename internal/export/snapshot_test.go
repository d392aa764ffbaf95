/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"elayvate/internal/overlay"
)

type nopNotifier struct{}

func (nopNotifier) ItemChanged(*overlay.Item)                {}
func (nopNotifier) ItemSelectionChanged(*overlay.Item, bool) {}

func writeTestPNG(t *testing.T, dir string, c color.RGBA, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, "src.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close test image: %v", err)
	}
	return path
}

func newSourcedRecord(t *testing.T, srcPath string, x, y float64) *overlay.Record {
	t.Helper()
	it, err := overlay.NewItem(nopNotifier{}, overlay.Rect{X: x, Y: y, Width: 40, Height: 40}, 20, 960, 540)
	if err != nil {
		t.Fatalf("NewItem error: %v", err)
	}
	if err := it.SetSource(srcPath); err != nil {
		t.Fatalf("SetSource error: %v", err)
	}
	rec := overlay.NewRecord()
	if err := rec.AttachItem(it); err != nil {
		t.Fatalf("AttachItem error: %v", err)
	}
	return rec
}

func TestComposePlacesSourcedItems(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, color.RGBA{R: 255, A: 255}, 8, 8)
	rec := newSourcedRecord(t, src, 100, 60)

	img, err := Compose([]*overlay.Record{rec}, 960, 540)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 960 || got.Dy() != 540 {
		t.Fatalf("unexpected snapshot size: %v", got)
	}
	// inside the item: red, fully stretched to the 40x40 rect
	if c := img.RGBAAt(120, 80); c.R != 255 || c.A != 255 {
		t.Fatalf("expected item pixel at (120,80), got %v", c)
	}
	// outside the item: transparent
	if c := img.RGBAAt(400, 300); c.A != 0 {
		t.Fatalf("expected transparent background, got %v", c)
	}
}

func TestComposeSkipsUnsourcedItems(t *testing.T) {
	it, err := overlay.NewItem(nopNotifier{}, overlay.Rect{X: 0, Y: 0, Width: 40, Height: 40}, 20, 960, 540)
	if err != nil {
		t.Fatalf("NewItem error: %v", err)
	}
	rec := overlay.NewRecord()
	if err := rec.AttachItem(it); err != nil {
		t.Fatalf("AttachItem error: %v", err)
	}

	img, err := Compose([]*overlay.Record{rec}, 960, 540)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if c := img.RGBAAt(10, 10); c.A != 0 {
		t.Fatalf("unsourced item must not paint, got %v", c)
	}
}

func TestComposeRejectsBadSize(t *testing.T) {
	if _, err := Compose(nil, 0, 540); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := Compose(nil, 960, -1); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestWriteSnapshotPNG(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, color.RGBA{G: 255, A: 255}, 8, 8)
	rec := newSourcedRecord(t, src, 0, 0)

	out := filepath.Join(dir, "out", "snapshot.png")
	if err := WriteSnapshotPNG([]*overlay.Record{rec}, 320, 200, out); err != nil {
		t.Fatalf("WriteSnapshotPNG error: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("unexpected snapshot size: %v", b)
	}
}

func TestWriteSnapshotPDF(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, color.RGBA{B: 255, A: 255}, 8, 8)
	rec := newSourcedRecord(t, src, 40, 40)

	out := filepath.Join(dir, "snapshot.pdf")
	if err := WriteSnapshotPDF([]*overlay.Record{rec}, 320, 200, out); err != nil {
		t.Fatalf("WriteSnapshotPDF error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(b) < 8 || string(b[:5]) != "%PDF-" {
		t.Fatalf("output is not a PDF (len=%d)", len(b))
	}
}
