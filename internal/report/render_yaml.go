package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"pirevision/internal/revision"

	"gopkg.in/yaml.v2"
)

// yamlRevision keeps the field order of the other formats.
func yamlRevision(rev revision.Revision) yaml.MapSlice {
	item := yaml.MapSlice{{Key: revision.KeyRevisionCode, Value: rev.Original.String()}}
	for _, field := range rev.Fields() {
		item = append(item, yaml.MapItem{Key: field.Key, Value: field.Value})
	}
	return item
}

func createYamlReport(revisions []revision.Revision) (out []byte, err error) {
	items := make([]yaml.MapSlice, 0, len(revisions))
	for _, rev := range revisions {
		items = append(items, yamlRevision(rev))
	}
	return yaml.Marshal(items)
}
