package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strings"

	"pirevision/internal/revision"
)

// createJsonReport writes one JSON object per revision, one after another,
// so a single code yields a single object.
func createJsonReport(revisions []revision.Revision) (out []byte, err error) {
	var sb strings.Builder
	for _, rev := range revisions {
		var js string
		js, err = rev.JSON()
		if err != nil {
			return
		}
		sb.WriteString(js)
	}
	out = []byte(sb.String())
	return
}
