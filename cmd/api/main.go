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

// Package main is the entry point for the QR code encoding HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
	transport "github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/transport/http"
)

func main() {
	// Load .env file (optional in production)
	dotenvErr := godotenv.Load()

	log := logger.InitLogger()
	if dotenvErr != nil {
		log.Debug("No .env file found, using environment variables")
	} else {
		log.Info(".env file loaded successfully")
	}

	cfg := config.LoadConfig()
	log.Debug("Configuration loaded",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"encode_timeout", cfg.EncodeTimeout,
		"max_body_size", cfg.MaxBodySize,
		"max_module_size", cfg.MaxModuleSize,
		"max_margin", cfg.MaxMargin,
	)

	svc := qr.NewService(log, cfg.Limits())
	log.Debug("QR service initialized")

	h := transport.NewHandler(svc, log, cfg.MaxBodySize, cfg.EncodeTimeout)
	router := transport.NewRouter(h, log, cfg.CORSAllowedOrigins)
	log.Debug("HTTP routes registered",
		"endpoints", []string{transport.GeneratePath, transport.ResourcePath, transport.HealthPath},
		"cors_origins", cfg.CORSAllowedOrigins,
	)

	// Configure HTTP server with timeouts and security settings
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Port, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		log.Error("Server failed to start", "error", err)
		os.Exit(1)
	case sig := <-quit:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	log.Debug("Initiating graceful shutdown", "timeout", cfg.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err, "timeout", cfg.ShutdownTimeout)
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Shutdown timeout exceeded, closing connections")
			srv.Close()
		}
		os.Exit(1)
	}

	log.Info("Server exited gracefully")
}
