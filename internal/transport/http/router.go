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
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes served by NewRouter.
const (
	GeneratePath = "/generate"
	// ResourcePath is the resource name the API gateway deployment exposes.
	ResourcePath = "/qrCodeResource"
	HealthPath   = "/health"
)

// NewRouter returns a chi router with all API routes and middleware applied.
// Unsupported methods on known routes get 405 from chi.
func NewRouter(h *Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLoggingMiddleware(logger))
	r.Use(CORSMiddleware(allowedOrigins))

	r.Post(GeneratePath, h.Generate)
	r.Post(ResourcePath, h.Generate)
	r.Get(HealthPath, h.HealthCheck)

	return r
}
