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

package encoder

import "fmt"

// matrix is the working grid during symbol construction. Cells are
// addressed as [y][x].
type matrix struct {
	size     int
	modules  [][]bool
	function [][]bool
}

func newMatrix(version int) *matrix {
	size := symbolSize(version)
	m := &matrix{
		size:     size,
		modules:  make([][]bool, size),
		function: make([][]bool, size),
	}
	for y := 0; y < size; y++ {
		m.modules[y] = make([]bool, size)
		m.function[y] = make([]bool, size)
	}
	return m
}

func (m *matrix) clone() *matrix {
	c := &matrix{
		size:     m.size,
		modules:  make([][]bool, m.size),
		function: m.function,
	}
	for y := range m.modules {
		c.modules[y] = append([]bool(nil), m.modules[y]...)
	}
	return c
}

func (m *matrix) setFunction(x, y int, dark bool) {
	m.modules[y][x] = dark
	m.function[y][x] = true
}

// drawFunctionPatterns reserves and draws finder, separator, timing and
// alignment patterns, plus placeholder format and version areas.
func (m *matrix) drawFunctionPatterns(version int) {
	for i := 0; i < m.size; i++ {
		m.setFunction(6, i, i%2 == 0)
		m.setFunction(i, 6, i%2 == 0)
	}

	m.drawFinder(3, 3)
	m.drawFinder(m.size-4, 3)
	m.drawFinder(3, m.size-4)

	pos := alignmentPositions(version)
	last := len(pos) - 1
	for i := range pos {
		for j := range pos {
			// Corners overlap the finder patterns.
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			m.drawAlignment(pos[i], pos[j])
		}
	}

	m.drawFormatBits(0)
	m.drawVersion(version)
}

// drawFinder draws a finder pattern and its separator centred at (cx, cy).
func (m *matrix) drawFinder(cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= m.size || y < 0 || y >= m.size {
				continue
			}
			dist := max(abs(dx), abs(dy))
			m.setFunction(x, y, dist != 2 && dist != 4)
		}
	}
}

func (m *matrix) drawAlignment(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setFunction(cx+dx, cy+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// formatBits returns the 15-bit BCH coded format information.
func formatBits(level Level, mask int) int {
	data := level.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ 0x5412
}

// versionBits returns the 18-bit BCH coded version information.
func versionBits(version int) int {
	rem := version
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return version<<12 | rem
}

// drawFormat writes both copies of the format information for level/mask.
func (m *matrix) drawFormat(level Level, mask int) {
	m.drawFormatBits(formatBits(level, mask))
}

func (m *matrix) drawFormatBits(bits int) {
	bit := func(i int) bool { return (bits>>uint(i))&1 == 1 }

	// Around the top-left finder.
	for i := 0; i <= 5; i++ {
		m.setFunction(8, i, bit(i))
	}
	m.setFunction(8, 7, bit(6))
	m.setFunction(8, 8, bit(7))
	m.setFunction(7, 8, bit(8))
	for i := 9; i < 15; i++ {
		m.setFunction(14-i, 8, bit(i))
	}

	// Split between the other two finders.
	for i := 0; i < 8; i++ {
		m.setFunction(m.size-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.setFunction(8, m.size-15+i, bit(i))
	}
	m.setFunction(8, m.size-8, true)
}

func (m *matrix) drawVersion(version int) {
	if version < 7 {
		return
	}
	bits := versionBits(version)
	for i := 0; i < 18; i++ {
		dark := (bits>>uint(i))&1 == 1
		a, b := m.size-11+i%3, i/3
		m.setFunction(a, b, dark)
		m.setFunction(b, a, dark)
	}
}

// placeCodewords fills non-function modules with the codeword bits in the
// zig-zag order, two columns at a time from the bottom-right corner.
func (m *matrix) placeCodewords(data []byte) error {
	total := len(data) * 8
	i := 0
	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < m.size; vert++ {
			y := vert
			if upward {
				y = m.size - 1 - vert
			}
			for j := 0; j < 2; j++ {
				x := right - j
				if m.function[y][x] || i >= total {
					continue
				}
				m.modules[y][x] = (data[i>>3]>>uint(7-i&7))&1 == 1
				i++
			}
		}
	}
	if i != total {
		return fmt.Errorf("%w: placed %d of %d codeword bits", ErrInternal, i, total)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
