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

// Package qr provides the QR encoding service core: request validation,
// symbol encoding, PNG rendering and mapping of outcomes to responses.
package qr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/raster"
)

// EncodeResult is the terminal artifact of one call. Image is set only when
// Status is StatusOK.
type EncodeResult struct {
	Image       []byte
	ContentType string
	Status      Status
	Err         error

	// Symbol diagnostics, set on success.
	Version int
	Mask    int
}

// Message returns the caller-facing error text.
func (r EncodeResult) Message() string {
	var e *Error
	if errors.As(r.Err, &e) {
		return e.Message
	}
	if r.Err != nil {
		return "internal encoding error"
	}
	return ""
}

type Service interface {
	// Encode renders req, which must come from Validator.Parse or pass
	// Validator.Validate.
	Encode(ctx context.Context, req EncodeRequest) EncodeResult
	// Generate validates a raw JSON payload and encodes it.
	Generate(ctx context.Context, payload []byte) EncodeResult
}

type service struct {
	logger    *slog.Logger
	validator *Validator
}

// NewService creates a new QR encoding service instance.
func NewService(logger *slog.Logger, limits Limits) Service {
	return &service{
		logger:    logger,
		validator: NewValidator(limits),
	}
}

func (s *service) Generate(ctx context.Context, payload []byte) EncodeResult {
	s.logger.Debug("Validating encode request", "payload_bytes", len(payload))

	req, err := s.validator.Parse(payload)
	if err != nil {
		s.logger.Warn("Encode request rejected", "status", StatusOf(err), "error", err)
		return failure(err)
	}
	return s.Encode(ctx, req)
}

// Encode runs the encoder and rasterizer. Panics and broken invariants are
// reported as StatusInternal without an image.
func (s *service) Encode(ctx context.Context, req EncodeRequest) (result EncodeResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic during QR encoding", "panic", r, "text_length", len(req.Text))
			result = failure(&Error{Status: StatusInternal, Message: "internal encoding error", Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("Encode request rejected", "status", StatusOf(err), "error", err)
		return failure(err)
	}

	s.logger.Debug("Encoding QR symbol",
		"text", truncateString(req.Text, 32),
		"text_length", len(req.Text),
		"level", req.Level.String(),
	)

	sym, err := encoder.Encode(ctx, req.Text, req.Level)
	if err != nil {
		return s.encodeFailure(err, req)
	}

	s.logger.Debug("QR symbol encoded",
		"version", sym.Version,
		"mode", sym.Mode.String(),
		"mask", sym.Mask,
		"modules", sym.Size(),
	)

	png, err := raster.Render(sym, raster.Options{
		ModuleSize: req.ModuleSizePx,
		Margin:     req.MarginModules,
		Foreground: req.Foreground,
		Background: req.Background,
	})
	if err != nil {
		s.logger.Error("Failed to render QR symbol", "error", err, "version", sym.Version)
		return failure(&Error{Status: StatusInternal, Message: "failed to render image", Err: err})
	}

	dim := (sym.Size() + 2*req.MarginModules) * req.ModuleSizePx
	s.logger.Debug("QR code rendered",
		"output_size_bytes", len(png),
		"image_dimensions", fmt.Sprintf("%dx%d", dim, dim),
	)

	return EncodeResult{
		Image:       png,
		ContentType: raster.ContentType,
		Status:      StatusOK,
		Version:     sym.Version,
		Mask:        sym.Mask,
	}
}

func (s *service) encodeFailure(err error, req EncodeRequest) EncodeResult {
	switch {
	case errors.Is(err, encoder.ErrCapacityExceeded):
		s.logger.Warn("QR encoding failed: capacity exceeded", "text_length", len(req.Text), "level", req.Level.String())
		return failure(&Error{Status: StatusCapacityExceeded, Message: "text exceeds the capacity of the largest symbol", Err: err})
	case errors.Is(err, encoder.ErrEmptyInput):
		return failure(&Error{Status: StatusInvalidInput, Message: "text is required", Err: err})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("QR encoding aborted", "error", err)
		return failure(&Error{Status: StatusInternal, Message: "encoding aborted", Err: err})
	default:
		s.logger.Error("Internal QR encoding fault", "error", err, "text_length", len(req.Text), "level", req.Level.String())
		return failure(&Error{Status: StatusInternal, Message: "internal encoding error", Err: err})
	}
}

func failure(err error) EncodeResult {
	return EncodeResult{Status: StatusOf(err), Err: err}
}

// truncateString truncates a string to maxLen for safe logging with proper UTF-8 handling.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
