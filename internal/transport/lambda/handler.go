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

// Package lambda adapts API Gateway proxy events to the QR encoding service.
package lambda

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

type Handler struct {
	svc         qr.Service
	logger      *slog.Logger
	maxBodySize int64
	allowOrigin string
}

// NewHandler creates an API Gateway handler. allowOrigin is returned in
// Access-Control-Allow-Origin on every response.
func NewHandler(svc qr.Service, logger *slog.Logger, maxBodySize int64, allowOrigin string) *Handler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &Handler{
		svc:         svc,
		logger:      logger,
		maxBodySize: maxBodySize,
		allowOrigin: allowOrigin,
	}
}

// Handle processes one proxy integration event. Failures are expressed as
// HTTP responses, so the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := h.logger.With("request_id", req.RequestContext.RequestID)
	log.Debug("Received API Gateway event",
		"method", req.HTTPMethod,
		"path", req.Path,
		"base64", req.IsBase64Encoded,
		"body_size", len(req.Body),
	)

	if req.HTTPMethod == http.MethodOptions {
		return h.respond(qr.Response{StatusCode: http.StatusNoContent}), nil
	}
	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
		return h.respond(qr.ErrorResponse(http.StatusMethodNotAllowed, qr.StatusInvalidInput, "method not allowed")), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			log.Warn("Invalid base64 request body", "error", err)
			return h.respond(qr.ErrorResponse(http.StatusBadRequest, qr.StatusInvalidInput, "request body is not valid base64")), nil
		}
		body = decoded
	}
	if h.maxBodySize > 0 && int64(len(body)) > h.maxBodySize {
		log.Warn("Request body too large", "body_size", len(body), "max_allowed", h.maxBodySize)
		return h.respond(qr.ErrorResponse(http.StatusRequestEntityTooLarge, qr.StatusInvalidInput, "request body too large")), nil
	}

	result := h.svc.Generate(ctx, body)
	if result.Status != qr.StatusOK {
		log.Warn("QR code request failed", "status", result.Status, "error", result.Err)
	} else {
		log.Info("QR code request completed successfully",
			"version", result.Version,
			"mask", result.Mask,
			"output_size", len(result.Image),
		)
	}
	return h.respond(qr.Assemble(result)), nil
}

// respond converts an assembled response into a proxy response. Binary
// bodies are base64 encoded as API Gateway requires.
func (h *Handler) respond(resp qr.Response) events.APIGatewayProxyResponse {
	out := events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers: map[string]string{
			"Access-Control-Allow-Origin": h.allowOrigin,
		},
	}
	if resp.ContentType != "" {
		out.Headers["Content-Type"] = resp.ContentType
	}
	if resp.StatusCode == http.StatusNoContent {
		out.Headers["Access-Control-Allow-Methods"] = "GET,POST,OPTIONS"
		out.Headers["Access-Control-Allow-Headers"] = "Content-Type,X-Amz-Date,Authorization,X-Api-Key"
		return out
	}
	if resp.ContentType == "application/json" {
		out.Body = string(resp.Body)
		return out
	}
	out.Body = base64.StdEncoding.EncodeToString(resp.Body)
	out.IsBase64Encoded = true
	return out
}
