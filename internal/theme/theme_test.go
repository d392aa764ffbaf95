/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	th := Default()
	if th.Name != "default" {
		t.Fatalf("expected name default, got %q", th.Name)
	}
	if th.Background != (color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}) {
		t.Fatalf("unexpected background: %v", th.Background)
	}
	if th.Selection != (color.RGBA{R: 0x09, G: 0x47, B: 0x71, A: 0xff}) {
		t.Fatalf("unexpected selection: %v", th.Selection)
	}
	if th.Foreground.A != 0xff {
		t.Fatalf("palette colors must be opaque")
	}
}

func TestLoadFullTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "light.json")
	doc := `{
		"name": "light",
		"foreground": "#000000",
		"background": "#ffffff",
		"surface": "#f3f3f3",
		"border": "#cccccc",
		"hover": "#e8e8e8",
		"selection": "#add6ff"
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if th.Name != "light" {
		t.Fatalf("expected name light, got %q", th.Name)
	}
	if th.Background != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("unexpected background: %v", th.Background)
	}
	if th.Selection != (color.RGBA{R: 0xad, G: 0xd6, B: 0xff, A: 0xff}) {
		t.Fatalf("unexpected selection: %v", th.Selection)
	}
}

func TestLoadPartialThemeKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accent.json")
	doc := `{"name": "accent", "selection": "#ff8800"}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if th.Selection != (color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}) {
		t.Fatalf("unexpected selection: %v", th.Selection)
	}
	def := Default()
	if th.Background != def.Background || th.Foreground != def.Foreground {
		t.Fatalf("untouched colors must keep defaults")
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-color.json":   `{"background": "dark gray"}`,
		"bad-field.json":   `{"accent": "#ff0000"}`,
		"bad-syntax.json":  `{"background": `,
		"bad-type.json":    `{"name": 5}`,
		"short-color.json": `{"border": "#ff"}`,
	}
	for name, doc := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("write theme: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for %s", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#fff")
	if err != nil {
		t.Fatalf("ParseHexColor error: %v", err)
	}
	if c != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("short form mismatch: %v", c)
	}
	c, err = ParseHexColor(" #094771 ")
	if err != nil {
		t.Fatalf("ParseHexColor error: %v", err)
	}
	if c != (color.RGBA{R: 0x09, G: 0x47, B: 0x71, A: 0xff}) {
		t.Fatalf("long form mismatch: %v", c)
	}
	for _, bad := range []string{"", "#", "#12345", "#gggggg", "red"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
