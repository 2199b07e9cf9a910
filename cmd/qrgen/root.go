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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
)

// cliContext carries state shared by all subcommands.
type cliContext struct {
	verbose bool
	limits  qr.Limits
}

// service builds a QR service logging to the command's stderr.
func (c *cliContext) service(cmd *cobra.Command) qr.Service {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return qr.NewService(logger.New(cmd.ErrOrStderr(), "", level), c.limits)
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{limits: qr.DefaultLimits()}

	rootCmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generate QR codes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Log encoding details to stderr")

	rootCmd.AddCommand(newEncodeCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newCapacityCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s\n", version)
		},
	})

	return rootCmd
}

// renderFlags are the encode options shared by encode and batch.
type renderFlags struct {
	level      string
	moduleSize int
	margin     int
	foreground string
	background string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.level, "level", "l", qr.DefaultLevel.String(), "Error correction level (L, M, Q, H)")
	cmd.Flags().IntVarP(&f.moduleSize, "module-size", "s", qr.DefaultModuleSizePx, "Pixels per module")
	cmd.Flags().IntVarP(&f.margin, "margin", "m", qr.DefaultMarginModules, "Quiet zone width in modules")
	cmd.Flags().StringVar(&f.foreground, "fg", "#000000", "Dark module colour (#RRGGBB)")
	cmd.Flags().StringVar(&f.background, "bg", "#FFFFFF", "Light module colour (#RRGGBB)")
}

// request converts the flags into an encode request for text.
func (f *renderFlags) request(text string) (qr.EncodeRequest, error) {
	req := qr.NewEncodeRequest(text)
	level, err := encoder.ParseLevel(f.level)
	if err != nil {
		return qr.EncodeRequest{}, err
	}
	req.Level = level
	req.ModuleSizePx = f.moduleSize
	req.MarginModules = f.margin
	if req.Foreground, err = qr.ParseColor(f.foreground); err != nil {
		return qr.EncodeRequest{}, fmt.Errorf("--fg: %w", err)
	}
	if req.Background, err = qr.ParseColor(f.background); err != nil {
		return qr.EncodeRequest{}, fmt.Errorf("--bg: %w", err)
	}
	return req, nil
}
