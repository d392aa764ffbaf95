/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"elayvate/internal/overlay"
)

// WriteSnapshotPDF composites the records and writes the result as a
// single-page PDF at outPath. The page takes the screen size in points, so
// the snapshot maps 1:1 onto the page.
func WriteSnapshotPDF(recs []*overlay.Record, screenW, screenH int, outPath string) error {
	img, err := Compose(recs, screenW, screenH)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(screenW), Ht: float64(screenH)},
		OrientationStr: "",
	})
	pdf.SetTitle("Overlay Snapshot", false)
	pdf.SetAuthor("Elayvate", false)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: float64(screenW), Ht: float64(screenH)})

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("snapshot", opt, &buf)
	pdf.ImageOptions("snapshot", 0, 0, float64(screenW), float64(screenH), false, opt, 0, "")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
