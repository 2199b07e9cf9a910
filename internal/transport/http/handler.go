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

// Package http provides HTTP transport layer for the QR encoding service.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

type Handler struct {
	svc           qr.Service
	logger        *slog.Logger
	maxBodySize   int64
	encodeTimeout time.Duration
}

// NewHandler creates a new HTTP handler for QR code generation. A zero
// encodeTimeout leaves the request context as is.
func NewHandler(svc qr.Service, logger *slog.Logger, maxBodySize int64, encodeTimeout time.Duration) *Handler {
	return &Handler{
		svc:           svc,
		logger:        logger,
		maxBodySize:   maxBodySize,
		encodeTimeout: encodeTimeout,
	}
}

// Generate handles POST requests carrying a JSON encode request and responds
// with a PNG image or a JSON error body.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := loggerFrom(r.Context(), h.logger)

	// Fast fail for obvious oversized requests
	if r.ContentLength > h.maxBodySize {
		log.Warn("Request body too large (ContentLength check)",
			"content_length", r.ContentLength,
			"max_allowed", h.maxBodySize,
			"remote_addr", r.RemoteAddr,
		)
		writeResponse(w, log, qr.ErrorResponse(http.StatusRequestEntityTooLarge, qr.StatusInvalidInput, "request body too large"))
		return
	}

	// Enforce maximum request body size to prevent DoS attacks
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn("Request body too large",
				"max_allowed", h.maxBodySize,
				"remote_addr", r.RemoteAddr,
			)
			writeResponse(w, log, qr.ErrorResponse(http.StatusRequestEntityTooLarge, qr.StatusInvalidInput, "request body too large"))
			return
		}
		log.Error("failed to read request body", "error", err, "remote_addr", r.RemoteAddr)
		writeResponse(w, log, qr.ErrorResponse(http.StatusBadRequest, qr.StatusInvalidInput, "failed to read request body"))
		return
	}
	log.Debug("Request body read successfully", "body_size", buf.Len())

	ctx := r.Context()
	if h.encodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.encodeTimeout)
		defer cancel()
	}

	result := h.svc.Generate(ctx, buf.Bytes())
	resp := qr.Assemble(result)
	if result.Status != qr.StatusOK {
		log.Warn("QR code request failed",
			"status", result.Status,
			"http_status", resp.StatusCode,
			"error", result.Err,
			"remote_addr", r.RemoteAddr,
		)
		writeResponse(w, log, resp)
		return
	}

	if !writeResponse(w, log, resp) {
		return
	}
	log.Info("QR code request completed successfully",
		"body_size", buf.Len(),
		"version", result.Version,
		"mask", result.Mask,
		"output_size", len(result.Image),
		"remote_addr", r.RemoteAddr,
	)
}

// HealthCheck handles GET /health requests for liveness/readiness probes.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	log := loggerFrom(r.Context(), h.logger)
	log.Debug("Health check request received",
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Error("failed to encode health check response",
			"error", err,
			"remote_addr", r.RemoteAddr,
		)
	}
}

// writeResponse writes an assembled response and reports whether it succeeded.
func writeResponse(w http.ResponseWriter, log *slog.Logger, resp qr.Response) bool {
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		log.Error("failed to write response",
			"error", err,
			"status", resp.StatusCode,
			"body_size", len(resp.Body),
		)
		return false
	}
	return true
}
