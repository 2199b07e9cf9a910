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
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
)

const (
	DefaultLevel         = encoder.LevelM
	DefaultModuleSizePx  = 8
	DefaultMarginModules = 4
)

// EncodeRequest is a validated request. Build one with Validator.Parse or
// NewEncodeRequest.
type EncodeRequest struct {
	Text          string
	Level         encoder.Level
	ModuleSizePx  int
	MarginModules int
	Foreground    color.RGBA
	Background    color.RGBA
}

// NewEncodeRequest returns a request for text with every option defaulted.
func NewEncodeRequest(text string) EncodeRequest {
	return EncodeRequest{
		Text:          text,
		Level:         DefaultLevel,
		ModuleSizePx:  DefaultModuleSizePx,
		MarginModules: DefaultMarginModules,
		Foreground:    color.RGBA{A: 0xFF},
		Background:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// payload is the JSON body accepted from the front end.
type payload struct {
	Text                 *string `json:"text"`
	ErrorCorrectionLevel *string `json:"errorCorrectionLevel"`
	ModuleSizePx         *int    `json:"moduleSizePx"`
	MarginModules        *int    `json:"marginModules"`
	Foreground           *string `json:"foreground"`
	Background           *string `json:"background"`
}

// Limits bounds the rendering options a caller may ask for.
type Limits struct {
	MaxModuleSizePx  int
	MaxMarginModules int
}

// DefaultLimits keeps the largest canvas (version 40) under 7000px a side.
func DefaultLimits() Limits {
	return Limits{MaxModuleSizePx: 32, MaxMarginModules: 16}
}

// Validator turns raw payloads into EncodeRequests.
type Validator struct {
	limits Limits
}

// NewValidator creates a validator enforcing limits. Zero limits fall back
// to DefaultLimits.
func NewValidator(limits Limits) *Validator {
	def := DefaultLimits()
	if limits.MaxModuleSizePx <= 0 {
		limits.MaxModuleSizePx = def.MaxModuleSizePx
	}
	if limits.MaxMarginModules <= 0 {
		limits.MaxMarginModules = def.MaxMarginModules
	}
	return &Validator{limits: limits}
}

// Parse decodes and validates a JSON payload. Errors are *Error values with
// StatusInvalidInput or StatusCapacityExceeded.
func (v *Validator) Parse(raw []byte) (EncodeRequest, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return EncodeRequest{}, invalidInput("request body is empty")
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return EncodeRequest{}, &Error{Status: StatusInvalidInput, Message: "request body is not valid JSON", Err: err}
	}

	req := NewEncodeRequest("")
	if p.Text == nil || *p.Text == "" {
		return EncodeRequest{}, invalidInput("text is required")
	}
	req.Text = *p.Text

	if p.ErrorCorrectionLevel != nil {
		level, err := encoder.ParseLevel(*p.ErrorCorrectionLevel)
		if err != nil {
			return EncodeRequest{}, &Error{Status: StatusInvalidInput, Message: "errorCorrectionLevel must be one of L, M, Q, H", Err: err}
		}
		req.Level = level
	}
	if p.ModuleSizePx != nil {
		req.ModuleSizePx = *p.ModuleSizePx
	}
	if p.MarginModules != nil {
		req.MarginModules = *p.MarginModules
	}
	if p.Foreground != nil {
		c, err := ParseColor(*p.Foreground)
		if err != nil {
			return EncodeRequest{}, &Error{Status: StatusInvalidInput, Message: "foreground must be #RRGGBB", Err: err}
		}
		req.Foreground = c
	}
	if p.Background != nil {
		c, err := ParseColor(*p.Background)
		if err != nil {
			return EncodeRequest{}, &Error{Status: StatusInvalidInput, Message: "background must be #RRGGBB", Err: err}
		}
		req.Background = c
	}

	if err := v.Validate(req); err != nil {
		return EncodeRequest{}, err
	}
	return req, nil
}

// Validate checks a request built in code against the same rules Parse uses.
func (v *Validator) Validate(req EncodeRequest) error {
	if req.Text == "" {
		return invalidInput("text is required")
	}
	if req.ModuleSizePx < 1 || req.ModuleSizePx > v.limits.MaxModuleSizePx {
		return invalidInput("moduleSizePx must be between 1 and %d", v.limits.MaxModuleSizePx)
	}
	if req.MarginModules < 0 || req.MarginModules > v.limits.MaxMarginModules {
		return invalidInput("marginModules must be between 0 and %d", v.limits.MaxMarginModules)
	}
	if !encoder.Fits(req.Text, req.Level) {
		mode := encoder.SelectMode(req.Text)
		return &Error{
			Status: StatusCapacityExceeded,
			Message: fmt.Sprintf("text of %d bytes exceeds the %s mode capacity of %d at level %s",
				len(req.Text), mode, encoder.MaxCharacters(mode, encoder.MaxVersion, req.Level), req.Level),
		}
	}
	return nil
}

// ParseColor parses "#RRGGBB" (the leading '#' is optional).
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
