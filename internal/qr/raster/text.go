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

package raster

import "strings"

// Text renders the grid with Unicode half blocks, two module rows per line.
// Dark modules are drawn as filled cells; invert swaps the two, for terminals
// with light text on a dark background.
func Text(g Grid, margin int, invert bool) string {
	size := g.Size()
	dark := func(x, y int) bool {
		x, y = x-margin, y-margin
		if x < 0 || y < 0 || x >= size || y >= size {
			return invert
		}
		return g.Dark(x, y) != invert
	}

	total := size + 2*margin
	var sb strings.Builder
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			top := dark(x, y)
			bottom := y+1 < total && dark(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
