package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bufio"
	"bytes"
	"fmt"

	"pirevision/internal/revision"

	"github.com/xuri/excelize/v2"
)

const XlsxSheetName = "Revisions"

var xlsxHeadings = map[string]string{
	revision.KeyRevisionCode:          "Revision Code",
	revision.KeyStyle:                 "Style",
	revision.KeyOvervoltageAllowed:    "Overvoltage",
	revision.KeyOTPProgrammingAllowed: "OTP Programming",
	revision.KeyOTPReadingAllowed:     "OTP Reading",
	revision.KeyWarrantyIntact:        "Warranty",
	revision.KeyType:                  "Type/Model",
	revision.KeyRevision:              "Revision",
	revision.KeyProcessor:             "Processor/SOC",
	revision.KeyMemory:                "Memory",
	revision.KeyManufacturer:          "Manufacturer",
}

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

// renderXlsxRevision writes one revision per row. Fields an old style code
// does not carry are left empty.
func renderXlsxRevision(rev revision.Revision, f *excelize.File, sheetName string, row int, alignLeft int) {
	values := map[string]string{revision.KeyRevisionCode: rev.Original.String()}
	for _, field := range rev.Fields() {
		values[field.Key] = field.Text
	}
	for i, key := range revision.FieldKeys {
		value, ok := values[key]
		if !ok {
			continue
		}
		_ = f.SetCellValue(sheetName, cellName(i+1, row), value)
		_ = f.SetCellStyle(sheetName, cellName(i+1, row), cellName(i+1, row), alignLeft)
	}
}

func createXlsxReport(revisions []revision.Revision) (out []byte, err error) {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := XlsxSheetName
	_ = f.SetSheetName("Sheet1", sheetName)
	_ = f.SetColWidth(sheetName, "A", "K", 18)
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	alignLeft, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	// print the field names as column headings across the top of the sheet
	for i, key := range revision.FieldKeys {
		_ = f.SetCellValue(sheetName, cellName(i+1, 1), xlsxHeadings[key])
		_ = f.SetCellStyle(sheetName, cellName(i+1, 1), cellName(i+1, 1), headerStyle)
	}
	for i, rev := range revisions {
		renderXlsxRevision(rev, f, sheetName, i+2, alignLeft)
	}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	_, err = f.WriteTo(w)
	if err != nil {
		err = fmt.Errorf("failed to write xlsx report to buffer: %v", err)
		return
	}
	if err = w.Flush(); err != nil {
		err = fmt.Errorf("failed to flush xlsx report: %v", err)
		return
	}
	out = buf.Bytes()
	return
}
