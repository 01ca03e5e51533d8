package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strings"

	"pirevision/internal/revision"
)

// createTextReport separates the per-code blocks with a blank line.
func createTextReport(revisions []revision.Revision) (out []byte, err error) {
	var sb strings.Builder
	for i, rev := range revisions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(rev.Text())
	}
	out = []byte(sb.String())
	return
}
