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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr/encoder"
)

func newCapacityCommand() *cobra.Command {
	var version int

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show how many characters fit into a symbol version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version < encoder.MinVersion || version > encoder.MaxVersion {
				return fmt.Errorf("--version must be between %d and %d", encoder.MinVersion, encoder.MaxVersion)
			}

			columns := []column{
				{header: "Level"},
				{header: "Numeric", numeric: true},
				{header: "Alphanumeric", numeric: true},
				{header: "Byte", numeric: true},
				{header: "Data bits", numeric: true},
			}
			rows := make([][]string, 0, len(encoder.Levels))
			for _, level := range encoder.Levels {
				row := []string{level.String()}
				for _, mode := range encoder.Modes {
					row = append(row, strconv.Itoa(encoder.MaxCharacters(mode, version, level)))
				}
				row = append(row, strconv.Itoa(encoder.DataCapacityBits(version, level)))
				rows = append(rows, row)
			}

			size := 17 + 4*version
			fmt.Fprintf(cmd.OutOrStdout(), "Version %d (%dx%d modules)\n", version, size, size)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", encoder.MaxVersion, "Symbol version (1-40)")
	return cmd
}
