// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package raster renders QR module grids as PNG images and terminal text.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// ContentType is the media type of Render output.
const ContentType = "image/png"

// Grid is a square matrix of light and dark modules.
type Grid interface {
	Size() int
	Dark(x, y int) bool
}

// Options controls how a grid is drawn.
type Options struct {
	ModuleSize int
	Margin     int
	Foreground color.Color
	Background color.Color
}

// DefaultOptions returns 8px modules, a 4 module quiet zone and black on white.
func DefaultOptions() Options {
	return Options{
		ModuleSize: 8,
		Margin:     4,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Dimension returns the canvas side in pixels for a grid of size modules.
func (o Options) Dimension(size int) int {
	return (size + 2*o.Margin) * o.ModuleSize
}

// Image draws the grid onto a two-colour paletted canvas. Palette index 0 is
// the background.
func Image(g Grid, opts Options) (*image.Paletted, error) {
	if opts.ModuleSize < 1 {
		return nil, fmt.Errorf("module size must be >= 1, got %d", opts.ModuleSize)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("margin must be >= 0, got %d", opts.Margin)
	}
	fg, bg := opts.Foreground, opts.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}

	size := g.Size()
	dim := opts.Dimension(size)
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{bg, fg})

	// Rows of one module row are identical, so render one and copy it.
	row := make([]uint8, dim)
	for y := 0; y < size; y++ {
		clear(row)
		for x := 0; x < size; x++ {
			if !g.Dark(x, y) {
				continue
			}
			start := (x + opts.Margin) * opts.ModuleSize
			for px := start; px < start+opts.ModuleSize; px++ {
				row[px] = 1
			}
		}
		top := (y + opts.Margin) * opts.ModuleSize
		for py := top; py < top+opts.ModuleSize; py++ {
			copy(img.Pix[py*img.Stride:py*img.Stride+dim], row)
		}
	}
	return img, nil
}

// Render encodes the grid as a PNG. Output is byte-identical for identical
// inputs.
func Render(g Grid, opts Options) ([]byte, error) {
	img, err := Image(g, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
