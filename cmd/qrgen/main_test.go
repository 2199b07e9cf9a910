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

package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
)

// runCLI executes qrgen with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestEncode_WritesPNGToStdout(t *testing.T) {
	out, _, err := runCLI(t, "", "encode", "HELLO WORLD")
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	// Version 1 with the default 8px modules and 4 module margin.
	assert.Equal(t, (21+8)*8, img.Bounds().Dx())
}

func TestEncode_ReadsStdin(t *testing.T) {
	out, _, err := runCLI(t, "from stdin\n", "encode", "--format", "text", "--margin", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 21 rows drawn two per line.
	assert.Len(t, lines, 11)
}

func TestEncode_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.png")
	out, stderr, err := runCLI(t, "", "encode", "-o", path, "-s", "2", "-m", "0", "https://wso2.com")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, cfg.Width, cfg.Height)
	assert.Zero(t, cfg.Width%2)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		status qr.Status
		substr string
	}{
		{name: "bad level", args: []string{"encode", "-l", "X", "hi"}, substr: "level"},
		{name: "bad colour", args: []string{"encode", "--fg", "red", "hi"}, substr: "--fg"},
		{name: "bad format", args: []string{"encode", "-f", "gif", "hi"}, substr: "unknown format"},
		{name: "module size", args: []string{"encode", "-s", "0", "hi"}, status: qr.StatusInvalidInput},
		{name: "text negative margin", args: []string{"encode", "-f", "text", "--margin=-1", "hi"}, status: qr.StatusInvalidInput},
		{name: "text margin over limit", args: []string{"encode", "-f", "text", "-m", "17", "hi"}, status: qr.StatusInvalidInput},
		{name: "text too long", args: []string{"encode", "-f", "text", "-l", "H", strings.Repeat("a", 2000)}, status: qr.StatusCapacityExceeded},
		{name: "too long", args: []string{"encode", "-l", "H", strings.Repeat("a", 2000)}, status: qr.StatusCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			if tt.status != "" {
				assert.Equal(t, tt.status, qr.StatusOf(err))
			}
			if tt.substr != "" {
				assert.Contains(t, err.Error(), tt.substr)
			}
		})
	}
}

func TestBatch_EncodesEveryLine(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("first\n\nsecond\r\nthird\n"), 0o644))
	outDir := filepath.Join(dir, "out")

	out, _, err := runCLI(t, "", "batch", "-i", input, "-d", outDir, "-j", "2", "-s", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "encoded 3 QR codes")

	for _, name := range []string{"0001.png", "0003.png", "0004.png"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(outDir, "0002.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatch_StopsOnFailure(t *testing.T) {
	outDir := t.TempDir()
	stdin := "ok\n" + strings.Repeat("9", 8000) + "\n"

	_, _, err := runCLI(t, stdin, "batch", "-d", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, qr.StatusCapacityExceeded, qr.StatusOf(err))
}

func TestBatch_EmptyInput(t *testing.T) {
	_, _, err := runCLI(t, "\n\n", "batch", "-d", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input lines")
}

func TestCapacity_Table(t *testing.T) {
	out, _, err := runCLI(t, "", "capacity", "--version", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Version 1 (21x21 modules)")
	assert.Contains(t, out, "Level")
	assert.Contains(t, out, "Data bits")
	for _, want := range []string{"Numeric", "Alphanumeric", "Byte", "41", "25", "17", "152"} {
		assert.Contains(t, out, want)
	}
}

func TestCapacity_RejectsVersion(t *testing.T) {
	_, _, err := runCLI(t, "", "capacity", "--version", "41")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "qrgen dev\n", out)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]column{{header: "Mode"}, {header: "Max chars", numeric: true}}, [][]string{{"only"}})
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "Max chars")
	assert.NotContains(t, out, "MAX CHARS")
	assert.Contains(t, out, "only")
	assert.Empty(t, renderTable(nil, nil))
}
