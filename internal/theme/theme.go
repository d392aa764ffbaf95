/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package theme holds the editor color palette: a built-in dark default and
// optional user palettes loaded from schema-validated JSON files.
package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	applog "elayvate/internal/log"
)

//go:embed theme.schema.json
var schemaJSON []byte

// Theme is the resolved color palette used across the editor windows.
type Theme struct {
	Name       string
	Foreground color.RGBA // text and item outlines
	Background color.RGBA // canvas and window background
	Surface    color.RGBA // list view and panel background
	Border     color.RGBA // separators and input borders
	Hover      color.RGBA // hovered controls
	Selection  color.RGBA // selected list rows and canvas items
}

// themeFile mirrors the on-disk JSON representation with hex color strings.
type themeFile struct {
	Name       string `json:"name"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Border     string `json:"border"`
	Hover      string `json:"hover"`
	Selection  string `json:"selection"`
}

// Default returns the built-in dark palette.
func Default() Theme {
	return Theme{
		Name:       "default",
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Surface:    color.RGBA{R: 0x25, G: 0x25, B: 0x26, A: 0xff},
		Border:     color.RGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff},
		Hover:      color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
		Selection:  color.RGBA{R: 0x09, G: 0x47, B: 0x71, A: 0xff},
	}
}

// Load reads and validates a user theme JSON file. Colors not present in the
// file keep their default value, so partial palettes are allowed.
func Load(path string) (Theme, error) {
	l := applog.WithOperation(applog.WithComponent("theme"), "load").With(slog.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	if err := Validate(data); err != nil {
		return Theme{}, err
	}

	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}

	th := Default()
	if tf.Name != "" {
		th.Name = tf.Name
	}
	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{tf.Foreground, &th.Foreground},
		{tf.Background, &th.Background},
		{tf.Surface, &th.Surface},
		{tf.Border, &th.Border},
		{tf.Hover, &th.Hover},
		{tf.Selection, &th.Selection},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}
	l.Info("theme loaded", slog.String("name", th.Name))
	return th, nil
}

// Validate checks raw theme JSON against the embedded schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("theme schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("theme does not conform to schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// full form
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
