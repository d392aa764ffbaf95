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

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"elayvate/internal/theme"
)

// editorTheme adapts the editor palette onto Fyne's theme interface.
// Anything the palette does not cover falls through to the stock dark theme.
type editorTheme struct {
	palette theme.Theme
}

var _ fyne.Theme = (*editorTheme)(nil)

func newEditorTheme(p theme.Theme) *editorTheme { return &editorTheme{palette: p} }

func (t *editorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameForeground:
		return t.palette.Foreground
	case fynetheme.ColorNameBackground:
		return t.palette.Background
	case fynetheme.ColorNameInputBackground, fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return t.palette.Surface
	case fynetheme.ColorNameSeparator, fynetheme.ColorNameInputBorder:
		return t.palette.Border
	case fynetheme.ColorNameHover:
		return t.palette.Hover
	case fynetheme.ColorNameSelection, fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return t.palette.Selection
	}
	return fynetheme.DefaultTheme().Color(name, variant)
}

func (t *editorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *editorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *editorTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
