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

import (
	"fmt"
	"strings"
)

// Level is the error correction level of a symbol.
type Level int

const (
	// LevelL recovers roughly 7% of codewords.
	LevelL Level = iota
	// LevelM recovers roughly 15% of codewords.
	LevelM
	// LevelQ recovers roughly 25% of codewords.
	LevelQ
	// LevelH recovers roughly 30% of codewords.
	LevelH
)

// Levels lists every supported level in ascending order of redundancy.
var Levels = [...]Level{LevelL, LevelM, LevelQ, LevelH}

// ParseLevel converts "L", "M", "Q" or "H" (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unsupported error correction level %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) valid() bool {
	return l >= LevelL && l <= LevelH
}

// formatBits is the two-bit level indicator used in the format information.
func (l Level) formatBits() int {
	switch l {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	default:
		return 2
	}
}
