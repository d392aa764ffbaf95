/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package imaging handles decoding and scaling of item source images.
// Scaling is always a non-uniform stretch to the target rectangle; items
// never letterbox. An item without a usable source is drawn as a plain
// white block, matching the editor's placeholder look.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Source formats offered by the file picker.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extra formats the picker does not offer but drag/drop and config may feed in.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// ErrImageLoad wraps any failure to open or decode a source image.
var ErrImageLoad = errors.New("imaging: image load failed")

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrImageLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}

// Stretch scales img to exactly width x height, ignoring aspect ratio.
// Zero or negative dimensions yield a nil image.
func Stretch(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Placeholder returns the solid white raster used for items with no source.
func Placeholder(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.SetRGBA(x, y, white)
		}
	}
	return dst
}
