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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/raster"
)

const (
	formatAuto = "auto"
	formatPNG  = "png"
	formatText = "text"
)

func newEncodeCommand(ctx *cliContext) *cobra.Command {
	var flags renderFlags
	var output string
	var format string
	var invert bool

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into a QR code",
		Long: "Encode text into a QR code. With no argument, or \"-\", the text is read from stdin.\n" +
			"Without --output the PNG goes to stdout, unless stdout is a terminal, where the code is drawn as text.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			req, err := flags.request(text)
			if err != nil {
				return err
			}
			// Text output bypasses the service, so both formats share its checks here.
			if err := qr.NewValidator(ctx.limits).Validate(req); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatAuto {
				format = formatPNG
				if output == "" && isTerminal(out) {
					format = formatText
				}
			}

			switch format {
			case formatText:
				sym, err := encoder.Encode(cmd.Context(), req.Text, req.Level)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				_, err = io.WriteString(out, raster.Text(sym, req.MarginModules, invert))
				return err
			case formatPNG:
				res := ctx.service(cmd).Encode(cmd.Context(), req)
				if res.Err != nil {
					return res.Err
				}
				if output == "" {
					_, err := out.Write(res.Image)
					return err
				}
				if err := os.WriteFile(output, res.Image, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (version %d, mask %d, %d bytes)\n", output, res.Version, res.Mask, len(res.Image))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want auto, png or text)", format)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the PNG to this file")
	cmd.Flags().StringVarP(&format, "format", "f", formatAuto, "Output format: auto, png or text")
	cmd.Flags().BoolVar(&invert, "invert", false, "Swap dark and light in text output")
	return cmd
}

// readText returns the single argument, or stdin without its trailing newline.
func readText(in io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
