// Package report renders decoded revision codes as txt, json, yaml or xlsx.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"slices"
	"strings"

	"pirevision/internal/revision"
)

const (
	FormatTxt  = "txt"
	FormatJson = "json"
	FormatYaml = "yaml"
	FormatXlsx = "xlsx"
)

// FormatOptions lists the accepted values for the format flag.
var FormatOptions = []string{FormatTxt, FormatJson, FormatYaml, FormatXlsx}

// IsValidFormat reports whether format is one of FormatOptions.
func IsValidFormat(format string) bool {
	return slices.Contains(FormatOptions, format)
}

// Create generates a report in the specified format for the decoded
// revisions, in the order given. Unknown formats return an error.
func Create(format string, revisions []revision.Revision) (out []byte, err error) {
	switch format {
	case FormatTxt:
		return createTextReport(revisions)
	case FormatJson:
		return createJsonReport(revisions)
	case FormatYaml:
		return createYamlReport(revisions)
	case FormatXlsx:
		return createXlsxReport(revisions)
	}
	return nil, fmt.Errorf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format)
}
