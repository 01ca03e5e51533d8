// Package common defines flags and functions that are used by multiple
// application commands, e.g., the root decode command and list.
package common

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pirevision/internal/report"
	"pirevision/internal/revision"
	"pirevision/internal/util"

	"github.com/spf13/cobra"
)

var AppName = filepath.Base(os.Args[0])

// output flags
var (
	FlagFormat string
	FlagJson   bool
	FlagOutput string
)

const (
	FlagFormatName = "format"
	FlagJsonName   = "json"
	FlagOutputName = "output"
)

// AddOutputFlags adds the report format and destination flags to cmd.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&FlagFormat, FlagFormatName, report.FormatTxt, fmt.Sprintf("choose output format from: %s", strings.Join(report.FormatOptions, ", ")))
	cmd.Flags().BoolVarP(&FlagJson, FlagJsonName, "j", false, fmt.Sprintf("shorthand for --%s %s", FlagFormatName, report.FormatJson))
	cmd.Flags().StringVar(&FlagOutput, FlagOutputName, "", fmt.Sprintf("write the report to this file instead of stdout, required for %s", report.FormatXlsx))
	cmd.MarkFlagsMutuallyExclusive(FlagFormatName, FlagJsonName)
}

// OutputFormat resolves the --json shorthand.
func OutputFormat() string {
	if FlagJson {
		return report.FormatJson
	}
	return FlagFormat
}

// ValidateOutputFlags checks the output flag values.
func ValidateOutputFlags(cmd *cobra.Command) error {
	format := OutputFormat()
	if !report.IsValidFormat(format) {
		return fmt.Errorf("format options are: %s", strings.Join(report.FormatOptions, ", "))
	}
	if format == report.FormatXlsx && FlagOutput == "" {
		return fmt.Errorf("--%s is required with --%s %s", FlagOutputName, FlagFormatName, report.FormatXlsx)
	}
	return nil
}

// WriteReport renders revisions in the selected format to the output file,
// or to the command's stdout.
func WriteReport(cmd *cobra.Command, revisions []revision.Revision) error {
	format := OutputFormat()
	out, err := report.Create(format, revisions)
	if err != nil {
		return fmt.Errorf("failed to create %s report: %w", format, err)
	}
	if FlagOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	path, err := util.WriteOutputFile(FlagOutput, out)
	if err != nil {
		return err
	}
	slog.Info("report written", slog.String("path", path), slog.String("format", format), slog.Int("revisions", len(revisions)))
	fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s\n", path)
	return nil
}
