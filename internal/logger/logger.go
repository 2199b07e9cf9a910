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
// KIND, either express or implied. See the License for the
// specific language governing permissions and limitations
// under the License.

// Package logger provides centralized logging configuration for the QR encoding service.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initOnce sync.Once
	shared   *slog.Logger
	levelMap = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

// InitLogger initializes and returns a logger based on LOG_ENV (dev/prod) and LOG_LEVEL (debug/info/warn/error).
// Later calls return the same logger.
func InitLogger() *slog.Logger {
	initOnce.Do(func() {
		logEnv := os.Getenv("LOG_ENV")
		logLevel := ParseLevel(os.Getenv("LOG_LEVEL"))

		shared = New(os.Stdout, logEnv, logLevel)
		shared.Info(
			"Logger initialized",
			"LOG_ENV", logEnv,
			"LOG_LEVEL", logLevel.String(),
		)
	})
	return shared
}

// New builds a logger writing to w. Production uses JSON for structured log
// parsing; any other environment uses text for human readability.
func New(w io.Writer, env string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel parses debug/info/warn/error, defaulting to info.
func ParseLevel(s string) slog.Level {
	if level, ok := levelMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level
	}
	return slog.LevelInfo
}
