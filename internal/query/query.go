// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package query selects decoded revisions with boolean expressions such as
// `memory_mb >= 512 && manufacturer == 'Sony UK'`.
package query

import (
	"fmt"
	"slices"
	"strings"

	"pirevision/internal/revision"

	"github.com/casbin/govaluate"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// variables available to filter expressions, beyond the report field keys
const (
	VarCode              = "code"
	VarNewStyle          = "new_style"
	VarTypeIndex         = "type_index"
	VarRevisionIndex     = "revision_index"
	VarProcessorIndex    = "processor_index"
	VarMemoryMB          = "memory_mb"
	VarManufacturerIndex = "manufacturer_index"
)

var fieldSet = mapset.NewSet(Fields()...)

// Fields returns the variable names a filter expression may use, sorted.
func Fields() []string {
	fields := []string{
		VarCode,
		VarNewStyle,
		VarTypeIndex,
		VarRevisionIndex,
		VarProcessorIndex,
		VarMemoryMB,
		VarManufacturerIndex,
	}
	for _, key := range revision.FieldKeys {
		if key != revision.KeyRevisionCode {
			fields = append(fields, key)
		}
	}
	slices.Sort(fields)
	return fields
}

// Filter is a compiled filter expression.
type Filter struct {
	expression *govaluate.EvaluableExpression
}

// Compile parses expr. Unknown variable names are rejected here rather than
// at evaluation time.
func Compile(expr string) (*Filter, error) {
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse filter %q", expr)
	}
	unknown := mapset.NewSet(expression.Vars()...).Difference(fieldSet)
	if unknown.Cardinality() > 0 {
		names := unknown.ToSlice()
		slices.Sort(names)
		return nil, fmt.Errorf("unknown filter field(s): %s, expected one of: %s", strings.Join(names, ", "), strings.Join(Fields(), ", "))
	}
	return &Filter{expression: expression}, nil
}

// Parameters returns the filter variables for rev. Fields that an old style
// code does not carry still get values from its new style equivalent.
// Numbers are float64, as govaluate compares numbers as float64.
func Parameters(rev revision.Revision) map[string]any {
	c := rev.Code
	mb, _ := c.MemoryMBytes()
	return map[string]any{
		VarCode:                           float64(rev.Original),
		VarNewStyle:                       rev.Original.NewStyle(),
		revision.KeyStyle:                 rev.Style(),
		revision.KeyOvervoltageAllowed:    c.OvervoltageAllowed(),
		revision.KeyOTPProgrammingAllowed: c.OTPProgrammingAllowed(),
		revision.KeyOTPReadingAllowed:     c.OTPReadingAllowed(),
		revision.KeyWarrantyIntact:        c.WarrantyIntact(),
		revision.KeyType:                  c.TypeString(),
		VarTypeIndex:                      float64(c.TypeIndex()),
		revision.KeyRevision:              c.RevisionString(),
		VarRevisionIndex:                  float64(c.RevisionIndex()),
		revision.KeyProcessor:             c.ProcessorString(),
		VarProcessorIndex:                 float64(c.ProcessorIndex()),
		revision.KeyMemory:                c.MemoryString(),
		VarMemoryMB:                       float64(mb),
		revision.KeyManufacturer:          c.ManufacturerString(),
		VarManufacturerIndex:              float64(c.ManufacturerIndex()),
	}
}

// Match evaluates the filter against rev. Expressions that do not yield a
// boolean are an error.
func (f *Filter) Match(rev revision.Revision) (bool, error) {
	result, err := f.expression.Evaluate(Parameters(rev))
	if err != nil {
		return false, errors.Wrapf(err, "failed to evaluate filter for %s", rev.Original)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q yields %v, not a boolean", f.expression.String(), result)
	}
	return matched, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression.String()
}
