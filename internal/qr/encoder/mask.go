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

import "context"

// NumMasks is the number of mask patterns defined for QR symbols.
const NumMasks = 8

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskApplies reports whether mask pattern inverts the module at (x, y).
func maskApplies(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	default:
		return ((x+y)%2+x*y%3)%2 == 0
	}
}

// applyMask XORs the mask pattern onto every non-function module.
func (m *matrix) applyMask(mask int) {
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if !m.function[y][x] && maskApplies(mask, x, y) {
				m.modules[y][x] = !m.modules[y][x]
			}
		}
	}
}

// masked returns a copy of m with the mask and matching format bits applied.
func (m *matrix) masked(level Level, mask int) *matrix {
	c := m.clone()
	c.applyMask(mask)
	c.drawFormat(level, mask)
	return c
}

// maskCandidate is one scored mask.
type maskCandidate struct {
	mask    int
	penalty int
	grid    *matrix
}

// chooseMask scores all masks in index order and keeps the lowest penalty.
// A later mask only wins on a strictly lower score.
func chooseMask(ctx context.Context, m *matrix, level Level) (maskCandidate, error) {
	best := maskCandidate{mask: -1}
	for mask := 0; mask < NumMasks; mask++ {
		if err := ctx.Err(); err != nil {
			return maskCandidate{}, err
		}
		grid := m.masked(level, mask)
		c := maskCandidate{mask: mask, penalty: grid.penalty(), grid: grid}
		if best.mask < 0 || c.penalty < best.penalty {
			best = c
		}
	}
	return best, nil
}

// penalty scores the grid; lower is better.
func (m *matrix) penalty() int {
	return m.runPenalty() + m.blockPenalty() + m.finderPenalty() + m.balancePenalty()
}

// runPenalty charges lines of five or more same-coloured modules.
func (m *matrix) runPenalty() int {
	score := 0
	for i := 0; i < m.size; i++ {
		score += runScore(m.size, func(j int) bool { return m.modules[i][j] })
		score += runScore(m.size, func(j int) bool { return m.modules[j][i] })
	}
	return score
}

func runScore(n int, at func(int) bool) int {
	score, run := 0, 1
	for j := 1; j <= n; j++ {
		if j < n && at(j) == at(j-1) {
			run++
			continue
		}
		if run >= 5 {
			score += penaltyN1 + run - 5
		}
		run = 1
	}
	return score
}

// blockPenalty charges every 2x2 block of one colour.
func (m *matrix) blockPenalty() int {
	score := 0
	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			c := m.modules[y][x]
			if c == m.modules[y][x+1] && c == m.modules[y+1][x] && c == m.modules[y+1][x+1] {
				score += penaltyN2
			}
		}
	}
	return score
}

var (
	finderLightFirst = [11]bool{false, false, false, false, true, false, true, true, true, false, true}
	finderLightLast  = [11]bool{true, false, true, true, true, false, true, false, false, false, false}
)

// finderPenalty charges 1:1:3:1:1 dark/light runs flanked by four light
// modules, which scanners can mistake for finder patterns.
func (m *matrix) finderPenalty() int {
	score := 0
	for i := 0; i < m.size; i++ {
		for j := 0; j+11 <= m.size; j++ {
			row := func(k int) bool { return m.modules[i][j+k] }
			col := func(k int) bool { return m.modules[j+k][i] }
			if matches(row, finderLightFirst) || matches(row, finderLightLast) {
				score += penaltyN3
			}
			if matches(col, finderLightFirst) || matches(col, finderLightLast) {
				score += penaltyN3
			}
		}
	}
	return score
}

func matches(at func(int) bool, pattern [11]bool) bool {
	for k, want := range pattern {
		if at(k) != want {
			return false
		}
	}
	return true
}

// balancePenalty charges ten points for every full five percent the dark
// module ratio deviates from one half, in either direction.
func (m *matrix) balancePenalty() int {
	dark := 0
	for _, row := range m.modules {
		for _, v := range row {
			if v {
				dark++
			}
		}
	}
	total := m.size * m.size
	// |dark/total - 1/2| / 5% without truncating the ratio first.
	steps := abs(dark*20-total*10) / total
	return steps * penaltyN4
}
