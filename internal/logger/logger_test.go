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

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "prod", slog.LevelInfo).Info("QR code generated", "version", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "QR code generated", entry["msg"])
	assert.Equal(t, float64(3), entry["version"])
}

func TestNew_DevWritesTextAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "dev", slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "status", "INVALID_INPUT")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `msg=shown`))
	assert.Contains(t, out, "status=INVALID_INPUT")
}

func TestInitLogger_ReturnsSameLogger(t *testing.T) {
	a := InitLogger()
	b := InitLogger()
	require.NotNil(t, a)
	assert.Same(t, a, b)
}
