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

const (
	// MinVersion is the smallest symbol version (21x21 modules).
	MinVersion = 1
	// MaxVersion is the largest symbol version (177x177 modules).
	MaxVersion = 40
)

// eccCodewordsPerBlock is indexed by [level][version]. Index 0 is unused.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// eccBlocks is the number of error correction blocks, indexed by [level][version].
var eccBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// symbolSize returns the side length in modules of the given version.
func symbolSize(version int) int {
	return 17 + 4*version
}

// rawDataModules counts the modules left for codewords (data, EC and
// remainder bits) after all function patterns have been reserved.
func rawDataModules(version int) int {
	n := (16*version+128)*version + 64
	if version >= 2 {
		align := version/7 + 2
		n -= (25*align-10)*align - 55
		if version >= 7 {
			n -= 36
		}
	}
	return n
}

// totalCodewords is the number of 8-bit codewords a symbol holds.
func totalCodewords(version int) int {
	return rawDataModules(version) / 8
}

// dataCodewords is the number of data codewords available for the version
// and level once error correction has been subtracted.
func dataCodewords(version int, level Level) int {
	return totalCodewords(version) - eccCodewordsPerBlock[level][version]*eccBlocks[level][version]
}

// DataCapacityBits returns how many data bits fit into the version at level.
func DataCapacityBits(version int, level Level) int {
	return dataCodewords(version, level) * 8
}

// alignmentPositions returns the row/column centres of alignment patterns.
func alignmentPositions(version int) []int {
	if version == 1 {
		return nil
	}
	count := version/7 + 2
	step := (version*8 + count*3 + 5) / (count*4 - 4) * 2
	pos := make([]int, count)
	pos[0] = 6
	for i, p := count-1, symbolSize(version)-7; i >= 1; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// MaxCharacters returns the largest input length (in characters for numeric
// and alphanumeric, bytes for byte mode) that fits into the version at level.
func MaxCharacters(mode Mode, version int, level Level) int {
	capacity := DataCapacityBits(version, level) - 4 - mode.charCountBits(version)
	if capacity < 0 {
		return 0
	}
	var n int
	switch mode {
	case ModeNumeric:
		n = capacity / 10 * 3
		switch rem := capacity % 10; {
		case rem >= 7:
			n += 2
		case rem >= 4:
			n++
		}
	case ModeAlphanumeric:
		n = capacity / 11 * 2
		if capacity%11 >= 6 {
			n++
		}
	default:
		n = capacity / 8
	}
	if limit := 1<<mode.charCountBits(version) - 1; n > limit {
		n = limit
	}
	return n
}
