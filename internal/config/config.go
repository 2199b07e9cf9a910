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

// Package config provides configuration management for the QR encoding service.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// EncodeTimeout bounds a single encode call.
	EncodeTimeout      time.Duration
	MaxBodySize        int64
	MaxModuleSize      int
	MaxMargin          int
	CORSAllowedOrigins []string
}

// LoadConfig reads configuration from environment variables and returns a Config instance.
func LoadConfig() *Config {
	limits := qr.DefaultLimits()
	return &Config{
		Port:               getEnv("PORT", "8080"),
		ReadTimeout:        getEnvDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:       getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		EncodeTimeout:      getEnvDuration("ENCODE_TIMEOUT", 3*time.Second),
		MaxBodySize:        getEnvInt64("MAX_BODY_SIZE", 524288),
		MaxModuleSize:      getEnvInt("MAX_MODULE_SIZE", limits.MaxModuleSizePx),
		MaxMargin:          getEnvInt("MAX_MARGIN", limits.MaxMarginModules),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// Limits returns the request option bounds for the validator.
func (c *Config) Limits() qr.Limits {
	return qr.Limits{
		MaxModuleSizePx:  c.MaxModuleSize,
		MaxMarginModules: c.MaxMargin,
	}
}

// getEnv retrieves a string environment variable or returns fallback if not set.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvDuration retrieves a duration environment variable or returns fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// getEnvInt retrieves an int environment variable or returns fallback (only accepts positive values).
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

// getEnvInt64 retrieves an int64 environment variable or returns fallback (only accepts positive values).
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			if i > 0 {
				return i
			}
		}
	}
	return fallback
}

// getEnvList splits a comma-separated environment variable, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
