/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package imaging

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "src.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadDecodesPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 12, 8)
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestLoadMissingFileIsErrImageLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrImageLoad) {
		t.Fatalf("expected ErrImageLoad, got %v", err)
	}
}

func TestLoadCorruptFileIsErrImageLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrImageLoad) {
		t.Fatalf("expected ErrImageLoad, got %v", err)
	}
}

func TestStretchIgnoresAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	out := Stretch(src, 80, 20)
	if out == nil {
		t.Fatalf("nil output")
	}
	if b := out.Bounds(); b.Dx() != 80 || b.Dy() != 20 {
		t.Fatalf("expected 80x20, got %v", b)
	}
}

func TestStretchSameSizeReturnsInput(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	if out := Stretch(src, 40, 40); out != image.Image(src) {
		t.Fatalf("expected input to pass through unchanged")
	}
}

func TestStretchInvalidInputs(t *testing.T) {
	if Stretch(nil, 10, 10) != nil {
		t.Fatalf("nil image should stay nil")
	}
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if Stretch(src, 0, 10) != nil || Stretch(src, 10, -1) != nil {
		t.Fatalf("non-positive target must yield nil")
	}
}

func TestPlaceholderIsWhite(t *testing.T) {
	img := Placeholder(6, 4)
	if img == nil {
		t.Fatalf("nil placeholder")
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
	r, g, b, a := img.At(3, 2).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("placeholder pixel not white: %v %v %v %v", r, g, b, a)
	}
}
