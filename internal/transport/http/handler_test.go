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

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(maxBody int64) http.Handler {
	svc := qr.NewService(discard, qr.DefaultLimits())
	h := NewHandler(svc, discard, maxBody, time.Second)
	return NewRouter(h, discard, []string{"*"})
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) qr.ErrorBody {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body qr.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerate_ReturnsPNG(t *testing.T) {
	router := newTestRouter(1 << 16)
	for _, path := range []string{GeneratePath, ResourcePath} {
		rec := post(t, router, path, `{"text":"12345","errorCorrectionLevel":"L","moduleSizePx":4,"marginModules":2}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

		cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 100, cfg.Height)
	}
}

func TestGenerate_ErrorStatuses(t *testing.T) {
	router := newTestRouter(1 << 16)
	cases := []struct {
		name   string
		body   string
		status int
		code   qr.Status
	}{
		{"empty text", `{"text":""}`, http.StatusBadRequest, qr.StatusInvalidInput},
		{"empty body", ``, http.StatusBadRequest, qr.StatusInvalidInput},
		{"bad json", `{`, http.StatusBadRequest, qr.StatusInvalidInput},
		{"bad level", `{"text":"x","errorCorrectionLevel":"Z"}`, http.StatusBadRequest, qr.StatusInvalidInput},
		{"too long", `{"text":"` + strings.Repeat("x", 3000) + `","errorCorrectionLevel":"H"}`, http.StatusUnprocessableEntity, qr.StatusCapacityExceeded},
	}
	for _, c := range cases {
		rec := post(t, router, GeneratePath, c.body)
		assert.Equal(t, c.status, rec.Code, c.name)
		body := decodeError(t, rec)
		assert.Equal(t, c.code, body.Code, c.name)
		assert.NotEmpty(t, body.Message, c.name)
	}
}

func TestGenerate_BodyTooLarge(t *testing.T) {
	router := newTestRouter(16)
	rec := post(t, router, GeneratePath, `{"text":"this body is longer than sixteen bytes"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, qr.StatusInvalidInput, decodeError(t, rec).Code)

	// Unknown length, so the limit is only hit while reading.
	req := httptest.NewRequest(http.MethodPost, GeneratePath, io.NopCloser(strings.NewReader(strings.Repeat("x", 64))))
	req.ContentLength = -1
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(1 << 16)
	req := httptest.NewRequest(http.MethodGet, GeneratePath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(1 << 16)
	req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	router := newTestRouter(1 << 16)

	req := httptest.NewRequest(http.MethodOptions, GeneratePath, nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Api-Key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodPost, GeneratePath, strings.NewReader(`{"text":"cors"}`))
	req.Header.Set("Origin", "https://app.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID_IsPropagated(t *testing.T) {
	router := newTestRouter(1 << 16)
	req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

// deadlineService records whether the context it received had a deadline.
type deadlineService struct {
	qr.Service
	hadDeadline bool
}

func (d *deadlineService) Generate(ctx context.Context, payload []byte) qr.EncodeResult {
	_, d.hadDeadline = ctx.Deadline()
	return qr.EncodeResult{Status: qr.StatusInternal, Err: &qr.Error{Status: qr.StatusInternal, Message: "stub"}}
}

func TestGenerate_AppliesEncodeTimeout(t *testing.T) {
	stub := &deadlineService{}
	h := NewHandler(stub, discard, 1<<16, 250*time.Millisecond)
	rec := post(t, NewRouter(h, discard, []string{"*"}), GeneratePath, `{"text":"x"}`)
	assert.True(t, stub.hadDeadline)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, qr.StatusInternal, decodeError(t, rec).Code)
}
