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

package qr

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
)

func TestParse_Defaults(t *testing.T) {
	req, err := NewValidator(DefaultLimits()).Parse([]byte(`{"text":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", req.Text)
	assert.Equal(t, encoder.LevelM, req.Level)
	assert.Equal(t, 8, req.ModuleSizePx)
	assert.Equal(t, 4, req.MarginModules)
	assert.Equal(t, color.RGBA{A: 0xFF}, req.Foreground)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, req.Background)
}

func TestParse_AllFields(t *testing.T) {
	req, err := NewValidator(DefaultLimits()).Parse([]byte(
		`{"text":"12345","errorCorrectionLevel":"h","moduleSizePx":3,"marginModules":0,"foreground":"#102030","background":"ffeedd"}`))
	require.NoError(t, err)
	assert.Equal(t, encoder.LevelH, req.Level)
	assert.Equal(t, 3, req.ModuleSizePx)
	assert.Equal(t, 0, req.MarginModules)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, req.Foreground)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xEE, B: 0xDD, A: 0xFF}, req.Background)
}

func TestParse_Rejections(t *testing.T) {
	v := NewValidator(Limits{MaxModuleSizePx: 16, MaxMarginModules: 8})
	cases := map[string]string{
		"empty body":        ``,
		"not json":          `{"text":`,
		"missing text":      `{"moduleSizePx":4}`,
		"empty text":        `{"text":""}`,
		"text not a string": `{"text":42}`,
		"bad level":         `{"text":"x","errorCorrectionLevel":"X"}`,
		"zero module":       `{"text":"x","moduleSizePx":0}`,
		"module too big":    `{"text":"x","moduleSizePx":17}`,
		"negative margin":   `{"text":"x","marginModules":-1}`,
		"margin too big":    `{"text":"x","marginModules":9}`,
		"bad foreground":    `{"text":"x","foreground":"black"}`,
		"bad background":    `{"text":"x","background":"#12345G"}`,
	}
	for name, body := range cases {
		_, err := v.Parse([]byte(body))
		require.Error(t, err, name)
		assert.Equal(t, StatusInvalidInput, StatusOf(err), name)
	}
}

func TestParse_CapacityBoundary(t *testing.T) {
	v := NewValidator(DefaultLimits())
	for _, level := range []string{"L", "M", "Q", "H"} {
		l, err := encoder.ParseLevel(level)
		require.NoError(t, err)
		limit := encoder.MaxCharacters(encoder.ModeAlphanumeric, encoder.MaxVersion, l)

		_, err = v.Parse([]byte(`{"text":"` + strings.Repeat("Z", limit) + `","errorCorrectionLevel":"` + level + `"}`))
		assert.NoError(t, err, level)

		_, err = v.Parse([]byte(`{"text":"` + strings.Repeat("Z", limit+1) + `","errorCorrectionLevel":"` + level + `"}`))
		assert.Equal(t, StatusCapacityExceeded, StatusOf(err), level)
	}
}

func TestNewValidator_ZeroLimitsUseDefaults(t *testing.T) {
	v := NewValidator(Limits{})
	assert.Equal(t, DefaultLimits(), v.limits)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0A0b0C")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x0A, G: 0x0B, B: 0x0C, A: 0xFF}, c)

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567", "+12345"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusOK, StatusOf(nil))
	assert.Equal(t, StatusInternal, StatusOf(assert.AnError))
	assert.Equal(t, StatusCapacityExceeded, StatusOf(&Error{Status: StatusCapacityExceeded}))
}
