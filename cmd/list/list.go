// Package list is a subcommand of the root command. It decodes every old
// style revision code known to the translation table.
package list

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"strings"

	"pirevision/internal/common"
	"pirevision/internal/query"
	"pirevision/internal/revision"

	"github.com/spf13/cobra"
)

const cmdName = "list"

var examples = []string{
	fmt.Sprintf("  List all old style codes:           $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  List the 512MB boards as YAML:      $ %s %s --filter \"memory_mb == 512\" --format yaml", common.AppName, cmdName),
	fmt.Sprintf("  List the Egoman boards:             $ %s %s --filter \"manufacturer == 'Egoman'\"", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Decode all old style revision codes",
	Long:          "Decode every old style (pre-2014) revision code that translates to a new style code, optionally selecting them with a filter expression.",
	Example:       strings.Join(examples, "\n"),
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	PreRunE:       validateFlags,
	RunE:          runCmd,
	SilenceErrors: true,
}

var flagFilter string

const flagFilterName = "filter"

func init() {
	Cmd.Flags().StringVar(&flagFilter, flagFilterName, "", fmt.Sprintf("boolean expression selecting the codes to list, see '%s fields'", common.AppName))
	common.AddOutputFlags(Cmd)
}

func validateFlags(cmd *cobra.Command, args []string) error {
	return common.ValidateOutputFlags(cmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	var filter *query.Filter
	if flagFilter != "" {
		var err error
		filter, err = query.Compile(flagFilter)
		if err != nil {
			return err
		}
	}
	cmd.SilenceUsage = true
	revisions, err := listRevisions(filter)
	if err != nil {
		slog.Error("failed to list revision codes", slog.String("error", err.Error()))
		return err
	}
	slog.Debug("listing revision codes", slog.Int("count", len(revisions)), slog.String("filter", flagFilter))
	if len(revisions) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No revision codes match the filter.")
		return nil
	}
	return common.WriteReport(cmd, revisions)
}

// listRevisions decodes the old style codes in ascending order, keeping
// those the filter matches. A nil filter matches all.
func listRevisions(filter *query.Filter) ([]revision.Revision, error) {
	var revisions []revision.Revision
	for _, code := range revision.LegacyCodes() {
		rev, err := revision.Decode(code)
		if err != nil {
			return nil, err
		}
		if filter != nil {
			matched, err := filter.Match(rev)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
		}
		revisions = append(revisions, rev)
	}
	return revisions, nil
}
