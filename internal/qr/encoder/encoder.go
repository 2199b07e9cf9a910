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

// Package encoder turns text into QR code symbols (ISO/IEC 18004 model 2).
// It selects the mode and smallest version, adds Reed-Solomon error
// correction, places the codewords and picks the mask with the lowest penalty.
package encoder

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to encode.
	ErrEmptyInput = errors.New("input is empty")
	// ErrCapacityExceeded is returned when the input does not fit into any
	// supported version at the requested level.
	ErrCapacityExceeded = errors.New("input exceeds symbol capacity")
	// ErrInternal marks a broken encoder invariant.
	ErrInternal = errors.New("internal encoding fault")
)

// Symbol is an encoded QR code. Modules are addressed as [y][x] with true
// meaning dark.
type Symbol struct {
	Version int
	Level   Level
	Mode    Mode
	Mask    int
	modules [][]bool
}

// Size returns the number of modules per side.
func (s *Symbol) Size() int {
	return len(s.modules)
}

// Dark reports whether the module at column x, row y is dark. Coordinates
// outside the symbol are light.
func (s *Symbol) Dark(x, y int) bool {
	if x < 0 || y < 0 || y >= len(s.modules) || x >= len(s.modules) {
		return false
	}
	return s.modules[y][x]
}

// Modules returns a copy of the module matrix.
func (s *Symbol) Modules() [][]bool {
	out := make([][]bool, len(s.modules))
	for y, row := range s.modules {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Fits reports whether text can be encoded at level in any supported version.
func Fits(text string, level Level) bool {
	bits := newSegment(text).totalBits(MaxVersion)
	return bits >= 0 && bits <= DataCapacityBits(MaxVersion, level)
}

// Encode builds the symbol for text at the given error correction level.
func Encode(ctx context.Context, text string, level Level) (*Symbol, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !level.valid() {
		return nil, fmt.Errorf("invalid error correction level %d", int(level))
	}

	seg := newSegment(text)
	version, err := selectVersion(ctx, seg, level)
	if err != nil {
		return nil, err
	}

	data, err := dataCodewordsFor(seg, version, level)
	if err != nil {
		return nil, err
	}
	codewords := addErrorCorrection(data, version, level)

	m := newMatrix(version)
	m.drawFunctionPatterns(version)
	if err := m.placeCodewords(codewords); err != nil {
		return nil, err
	}

	best, err := chooseMask(ctx, m, level)
	if err != nil {
		return nil, err
	}

	return &Symbol{
		Version: version,
		Level:   level,
		Mode:    seg.mode,
		Mask:    best.mask,
		modules: best.grid.modules,
	}, nil
}

// selectVersion returns the smallest version whose capacity holds seg.
func selectVersion(ctx context.Context, seg segment, level Level) (int, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if bits := seg.totalBits(v); bits >= 0 && bits <= DataCapacityBits(v, level) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %d %s characters at level %s", ErrCapacityExceeded, seg.count, seg.mode, level)
}

// dataCodewordsFor builds the padded data codeword sequence.
func dataCodewordsFor(seg segment, version int, level Level) ([]byte, error) {
	capacity := DataCapacityBits(version, level)
	var bb bitBuffer
	seg.appendTo(&bb, version)
	if bb.len() > capacity {
		return nil, fmt.Errorf("%w: %d bits in a %d bit version %d symbol", ErrCapacityExceeded, bb.len(), capacity, version)
	}

	bb.appendBits(0, min(4, capacity-bb.len()))
	bb.appendBits(0, (8-bb.len()%8)%8)
	for pad := uint32(0xEC); bb.len() < capacity; pad ^= 0xEC ^ 0x11 {
		bb.appendBits(pad, 8)
	}
	return bb.bytes(), nil
}

// addErrorCorrection splits data into blocks, appends each block's EC
// codewords and interleaves the result.
func addErrorCorrection(data []byte, version int, level Level) []byte {
	numBlocks := eccBlocks[level][version]
	eccLen := eccCodewordsPerBlock[level][version]
	raw := totalCodewords(version)
	numShort := numBlocks - raw%numBlocks
	shortLen := raw / numBlocks

	divisor := rsDivisor(eccLen)
	blocks := make([][]byte, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		n := shortLen - eccLen
		if i >= numShort {
			n++
		}
		block := make([]byte, 0, shortLen+1)
		block = append(block, data[k:k+n]...)
		k += n
		ecc := rsRemainder(block, divisor)
		if i < numShort {
			// Placeholder so every block has the same length.
			block = append(block, 0)
		}
		blocks[i] = append(block, ecc...)
	}

	out := make([]byte, 0, raw)
	for i := range blocks[0] {
		for j, block := range blocks {
			if i != shortLen-eccLen || j >= numShort {
				out = append(out, block[i])
			}
		}
	}
	return out
}
