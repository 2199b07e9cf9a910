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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "ENCODE_TIMEOUT",
		"MAX_BODY_SIZE", "MAX_MODULE_SIZE", "MAX_MARGIN", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 3*time.Second, cfg.EncodeTimeout)
	assert.Equal(t, int64(524288), cfg.MaxBodySize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, qr.DefaultLimits(), cfg.Limits())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENCODE_TIMEOUT", "750ms")
	t.Setenv("MAX_BODY_SIZE", "1024")
	t.Setenv("MAX_MODULE_SIZE", "12")
	t.Setenv("MAX_MARGIN", "6")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.EncodeTimeout)
	assert.Equal(t, int64(1024), cfg.MaxBodySize)
	assert.Equal(t, qr.Limits{MaxModuleSizePx: 12, MaxMarginModules: 6}, cfg.Limits())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("MAX_BODY_SIZE", "-5")
	t.Setenv("MAX_MODULE_SIZE", "zero")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, int64(524288), cfg.MaxBodySize)
	assert.Equal(t, qr.DefaultLimits().MaxModuleSizePx, cfg.MaxModuleSize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}
