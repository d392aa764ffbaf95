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
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"golang.design/x/hotkey"
)

// parseHotkey turns a config string like "ctrl+p" into its modifier and
// key parts. Only single-letter keys with at least one modifier are
// accepted; that matches what all supported platforms can register
// globally.
func parseHotkey(spec string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	if len(parts) < 2 {
		return nil, 0, fmt.Errorf("hotkey %q needs at least one modifier", spec)
	}
	var mods []hotkey.Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.TrimSpace(p) {
		case "ctrl":
			mods = append(mods, hotkey.ModCtrl)
		case "shift":
			mods = append(mods, hotkey.ModShift)
		default:
			return nil, 0, fmt.Errorf("unsupported hotkey modifier %q", p)
		}
	}
	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if len(keyPart) != 1 || keyPart[0] < 'a' || keyPart[0] > 'z' {
		return nil, 0, fmt.Errorf("unsupported hotkey key %q", keyPart)
	}
	keys := map[byte]hotkey.Key{
		'a': hotkey.KeyA, 'b': hotkey.KeyB, 'c': hotkey.KeyC, 'd': hotkey.KeyD,
		'e': hotkey.KeyE, 'f': hotkey.KeyF, 'g': hotkey.KeyG, 'h': hotkey.KeyH,
		'i': hotkey.KeyI, 'j': hotkey.KeyJ, 'k': hotkey.KeyK, 'l': hotkey.KeyL,
		'm': hotkey.KeyM, 'n': hotkey.KeyN, 'o': hotkey.KeyO, 'p': hotkey.KeyP,
		'q': hotkey.KeyQ, 'r': hotkey.KeyR, 's': hotkey.KeyS, 't': hotkey.KeyT,
		'u': hotkey.KeyU, 'v': hotkey.KeyV, 'w': hotkey.KeyW, 'x': hotkey.KeyX,
		'y': hotkey.KeyY, 'z': hotkey.KeyZ,
	}
	return mods, keys[keyPart[0]], nil
}

// registerOverlayHotkey binds the system-wide overlay toggle. The returned
// unregister func stops the listener; callers should invoke it on exit.
func registerOverlayHotkey(spec string, toggle func()) (func(), error) {
	mods, key, err := parseHotkey(spec)
	if err != nil {
		return nil, err
	}
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register hotkey %q: %w", spec, err)
	}
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-hk.Keydown():
				fyne.Do(toggle)
			}
		}
	}()
	return func() {
		close(done)
		_ = hk.Unregister()
	}, nil
}
