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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchItem is one non-empty input line.
type batchItem struct {
	line int
	text string
}

func newBatchCommand(ctx *cliContext) *cobra.Command {
	var flags renderFlags
	var input string
	var outDir string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encode every line of a file into its own PNG",
		Long: "Encode every non-empty line of --input into <out-dir>/<line>.png.\n" +
			"Lines are encoded in parallel; the first failure stops the batch.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readBatch(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no input lines in %s", input)
			}
			// Validate flags once so a bad option fails before any work.
			if _, err := flags.request("x"); err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}

			svc := ctx.service(cmd)
			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(1, concurrency))
			for _, item := range items {
				item := item
				g.Go(func() error {
					req, err := flags.request(item.text)
					if err != nil {
						return err
					}
					res := svc.Encode(gctx, req)
					if res.Err != nil {
						return fmt.Errorf("line %d: %w", item.line, res.Err)
					}
					path := filepath.Join(outDir, fmt.Sprintf("%04d.png", item.line))
					if err := os.WriteFile(path, res.Image, 0o644); err != nil {
						return fmt.Errorf("line %d: write %s: %w", item.line, path, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "encoded %d QR codes into %s\n", len(items), outDir)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "-", "File with one text per line (\"-\" for stdin)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "Directory for the PNG files")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", runtime.NumCPU(), "Maximum parallel encodes")
	return cmd
}

// readBatch collects the non-empty lines of path, numbered from 1.
func readBatch(stdin io.Reader, path string) ([]batchItem, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	var items []batchItem
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		items = append(items, batchItem{line: line, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}
