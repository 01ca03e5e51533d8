package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTables(t *testing.T) {
	tests := []struct {
		name  string
		table lookupTable[string]
	}{
		{"type", typeTable},
		{"processor", processorTable},
		{"manufacturer", manufacturerTable},
		{"revision", revisionTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.table.entries {
				assert.Equal(t, want, lookupString(tt.table, uint32(i)))
			}
			// one past the end is never a sentinel in these tables
			assert.Equal(t, Unknown, lookupString(tt.table, uint32(len(tt.table.entries))))
		})
	}
}

func TestLookupSentinel(t *testing.T) {
	table := lookupTable[string]{
		entries:  []string{"zero", "one"},
		sentinel: &sentinel[string]{index: 7, value: "seven"},
	}
	assert.Equal(t, "one", lookupString(table, 1))
	assert.Equal(t, Unknown, lookupString(table, 2))
	assert.Equal(t, "seven", lookupString(table, 7))
	assert.Equal(t, Unknown, lookupString(table, 8))

	_, ok := memoryTable.lookup(6)
	assert.False(t, ok)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "A", Code(0x00<<4).TypeString())
	assert.Equal(t, "4B", Code(0x11<<4).TypeString())
	assert.Equal(t, "CM4S", Code(0x15<<4).TypeString())
	assert.Equal(t, Unknown, Code(0x16<<4).TypeString())
	assert.Equal(t, Unknown, Code(0xFF<<4).TypeString())
}

func TestMemory(t *testing.T) {
	tests := []struct {
		index uint32
		mb    uint32
		ok    bool
		str   string
	}{
		{0, 256, true, "256MB"},
		{1, 512, true, "512MB"},
		{2, 1024, true, "1GB"},
		{3, 2048, true, "2GB"},
		{4, 4096, true, "4GB"},
		{5, 8192, true, "8GB"},
		{6, 0, false, Unknown},
		{7, 0, false, Unknown},
	}
	for _, tt := range tests {
		code := StyleBit | Code(tt.index<<memoryShift)
		assert.Equal(t, tt.index, code.MemoryIndex())
		mb, ok := code.MemoryMBytes()
		assert.Equal(t, tt.ok, ok, "index %d", tt.index)
		assert.Equal(t, tt.mb, mb, "index %d", tt.index)
		assert.Equal(t, tt.str, code.MemoryString(), "index %d", tt.index)
	}
}

func TestFormatMemory(t *testing.T) {
	assert.Equal(t, "256MB", formatMemory(256))
	assert.Equal(t, "512MB", formatMemory(512))
	assert.Equal(t, "1023MB", formatMemory(1023))
	assert.Equal(t, "1GB", formatMemory(1024))
	assert.Equal(t, "1GB", formatMemory(1536))
	assert.Equal(t, "8GB", formatMemory(8192))
	assert.Equal(t, "9999GB", formatMemory(9999*1024))
	assert.Equal(t, "", formatMemory(10000*1024))
}

func TestProcessorString(t *testing.T) {
	assert.Equal(t, "BCM2835", Code(0<<processorShift).ProcessorString())
	assert.Equal(t, "BCM2711", Code(3<<processorShift).ProcessorString())
	for i := uint32(4); i <= 0xF; i++ {
		assert.Equal(t, Unknown, Code(i<<processorShift).ProcessorString())
	}
}

func TestManufacturerString(t *testing.T) {
	assert.Equal(t, "Sony UK", Code(0<<manufacturerShift).ManufacturerString())
	assert.Equal(t, "Embest", Code(4<<manufacturerShift).ManufacturerString())
	assert.Equal(t, "Stadium", Code(5<<manufacturerShift).ManufacturerString())
	assert.Equal(t, Unknown, Code(6<<manufacturerShift).ManufacturerString())
	assert.Equal(t, Unknown, Code(14<<manufacturerShift).ManufacturerString())
	assert.Equal(t, "Qisda", Code(15<<manufacturerShift).ManufacturerString())
}

func TestRevisionString(t *testing.T) {
	assert.Equal(t, "1.0", Code(0).RevisionString())
	assert.Equal(t, "1.5", Code(5).RevisionString())
	assert.Equal(t, Unknown, Code(6).RevisionString())
	assert.Equal(t, "2.0", Code(15).RevisionString())
}

func TestFlags(t *testing.T) {
	base := Code(0xa02082)
	assert.True(t, base.OvervoltageAllowed())
	assert.True(t, base.OTPProgrammingAllowed())
	assert.True(t, base.OTPReadingAllowed())
	assert.True(t, base.WarrantyIntact())
	assert.Equal(t, "Allowed", base.OvervoltageString())
	assert.Equal(t, "Intact", base.WarrantyString())

	overvoltage := base | 1<<31
	assert.False(t, overvoltage.OvervoltageAllowed())
	assert.Equal(t, "Disallowed", overvoltage.OvervoltageString())
	assert.Equal(t, "Allowed", overvoltage.OTPProgrammingString())

	assert.Equal(t, "Disallowed", (base | 1<<30).OTPProgrammingString())
	assert.Equal(t, "Disallowed", (base | 1<<29).OTPReadingString())
	assert.Equal(t, "Voided", (base | 1<<25).WarrantyString())
}

func TestFieldsDoNotAlias(t *testing.T) {
	code := Code(0xFFFFFFFF)
	assert.Equal(t, uint32(0xFF), code.TypeIndex())
	assert.Equal(t, uint32(0xF), code.RevisionIndex())
	assert.Equal(t, uint32(0xF), code.ProcessorIndex())
	assert.Equal(t, uint32(0xF), code.ManufacturerIndex())
	assert.Equal(t, uint32(0x7), code.MemoryIndex())

	code = Code(0xa52083)
	assert.Equal(t, uint32(0x08), code.TypeIndex())
	assert.Equal(t, uint32(3), code.RevisionIndex())
	assert.Equal(t, uint32(2), code.ProcessorIndex())
	assert.Equal(t, uint32(5), code.ManufacturerIndex())
	assert.Equal(t, uint32(2), code.MemoryIndex())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "0xA02082", Code(0xa02082).String())
	assert.Equal(t, "0x2", Code(2).String())
}
