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

import "strings"

// Mode is the data encoding mode of a segment.
type Mode int

const (
	// ModeNumeric packs decimal digits three to ten bits.
	ModeNumeric Mode = iota
	// ModeAlphanumeric packs the 45-character set two to eleven bits.
	ModeAlphanumeric
	// ModeByte stores each byte in eight bits.
	ModeByte
)

// Modes lists the modes in order of preference.
var Modes = [...]Mode{ModeNumeric, ModeAlphanumeric, ModeByte}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	default:
		return "byte"
	}
}

func (m Mode) indicator() uint32 {
	switch m {
	case ModeNumeric:
		return 0x1
	case ModeAlphanumeric:
		return 0x2
	default:
		return 0x4
	}
}

// charCountBits is the width of the character count indicator.
func (m Mode) charCountBits(version int) int {
	band := 0
	switch {
	case version >= 27:
		band = 2
	case version >= 10:
		band = 1
	}
	switch m {
	case ModeNumeric:
		return [3]int{10, 12, 14}[band]
	case ModeAlphanumeric:
		return [3]int{9, 11, 13}[band]
	default:
		return [3]int{8, 16, 16}[band]
	}
}

// SelectMode returns the most compact mode able to represent text.
func SelectMode(text string) Mode {
	numeric, alnum := true, true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			numeric = false
		}
		if strings.IndexByte(alphanumericCharset, c) < 0 {
			alnum = false
			break
		}
	}
	switch {
	case numeric:
		return ModeNumeric
	case alnum:
		return ModeAlphanumeric
	default:
		return ModeByte
	}
}

// segment is a run of input encoded in a single mode.
type segment struct {
	mode  Mode
	count int
	data  string
}

func newSegment(text string) segment {
	return segment{mode: SelectMode(text), count: len(text), data: text}
}

// payloadBits is the size of the packed data, excluding headers.
func (s segment) payloadBits() int {
	switch s.mode {
	case ModeNumeric:
		return s.count/3*10 + [3]int{0, 4, 7}[s.count%3]
	case ModeAlphanumeric:
		return s.count/2*11 + s.count%2*6
	default:
		return s.count * 8
	}
}

// totalBits is the size of the segment in the given version, or -1 when the
// character count does not fit into the count indicator.
func (s segment) totalBits(version int) int {
	ccBits := s.mode.charCountBits(version)
	if s.count >= 1<<ccBits {
		return -1
	}
	return 4 + ccBits + s.payloadBits()
}

// appendTo writes mode indicator, character count and payload to bb.
func (s segment) appendTo(bb *bitBuffer, version int) {
	bb.appendBits(s.mode.indicator(), 4)
	bb.appendBits(uint32(s.count), s.mode.charCountBits(version))
	switch s.mode {
	case ModeNumeric:
		for i := 0; i < len(s.data); i += 3 {
			end := min(i+3, len(s.data))
			var v uint32
			for _, c := range []byte(s.data[i:end]) {
				v = v*10 + uint32(c-'0')
			}
			bb.appendBits(v, (end-i)*3+1)
		}
	case ModeAlphanumeric:
		for i := 0; i < len(s.data); i += 2 {
			v := uint32(strings.IndexByte(alphanumericCharset, s.data[i]))
			if i+1 < len(s.data) {
				v = v*45 + uint32(strings.IndexByte(alphanumericCharset, s.data[i+1]))
				bb.appendBits(v, 11)
			} else {
				bb.appendBits(v, 6)
			}
		}
	default:
		for i := 0; i < len(s.data); i++ {
			bb.appendBits(uint32(s.data[i]), 8)
		}
	}
}

// bitBuffer is an append-only big-endian bit sequence.
type bitBuffer struct {
	bits []bool
}

func (b *bitBuffer) appendBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		b.bits = append(b.bits, (v>>uint(i))&1 == 1)
	}
}

func (b *bitBuffer) len() int { return len(b.bits) }

// bytes packs the buffer into bytes. The length must be a multiple of 8.
func (b *bitBuffer) bytes() []byte {
	out := make([]byte, len(b.bits)/8)
	for i, bit := range b.bits {
		if bit {
			out[i>>3] |= 1 << uint(7-i&7)
		}
	}
	return out
}
