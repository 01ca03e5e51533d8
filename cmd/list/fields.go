package list

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"

	"pirevision/internal/query"

	"github.com/spf13/cobra"
)

// FieldsCmd prints the variables that filter expressions may use.
var FieldsCmd = &cobra.Command{
	Use:     "fields",
	Short:   "Show the fields available to list filters",
	GroupID: "primary",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, field := range query.Fields() {
			fmt.Fprintln(cmd.OutOrStdout(), field)
		}
		return nil
	},
}
