// Package revision decodes Raspberry Pi hardware revision codes into board
// model, memory size, manufacturer, processor, revision and feature flags.
// Old style (pre-2014) codes are translated to the new style bit-field layout
// before decoding so that both share one interpretation path.
package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
)

// Code is a raw 32-bit revision code as reported by the board firmware.
type Code uint32

// new style bit-field layout
const (
	overvoltageShift    = 31
	otpProgrammingShift = 30
	otpReadingShift     = 29
	warrantyShift       = 25
	styleShift          = 23
	memoryShift         = 20
	manufacturerShift   = 16
	processorShift      = 12
	typeShift           = 4
	revisionShift       = 0

	memoryMask       = 0x7
	manufacturerMask = 0xF
	processorMask    = 0xF
	typeMask         = 0xFF
	revisionMask     = 0xF

	// StyleBit marks a new style code.
	StyleBit Code = 1 << styleShift
)

// Unknown is rendered for field values missing from a lookup table.
const Unknown = "???"

const (
	allowedStr    = "Allowed"
	disallowedStr = "Disallowed"
	intactStr     = "Intact"
	voidedStr     = "Voided"
)

// sentinel substitutes a fixed string for one index past the end of a table.
type sentinel[T any] struct {
	index uint32
	value T
}

// lookupTable maps a small field index to a value. Indices beyond the
// entries miss unless they equal the sentinel index.
type lookupTable[T any] struct {
	entries  []T
	sentinel *sentinel[T]
}

func (t lookupTable[T]) lookup(index uint32) (value T, ok bool) {
	if index < uint32(len(t.entries)) {
		return t.entries[index], true
	}
	if t.sentinel != nil && index == t.sentinel.index {
		return t.sentinel.value, true
	}
	return value, false
}

// lookupString returns the table entry for index, or Unknown on a miss.
func lookupString(t lookupTable[string], index uint32) string {
	if s, ok := t.lookup(index); ok {
		return s
	}
	return Unknown
}

var typeTable = lookupTable[string]{
	entries: []string{
		"A",                 // 0x00
		"B",                 // 0x01
		"A+",                // 0x02
		"B+",                // 0x03
		"2B",                // 0x04
		"Alpha",             // 0x05
		"CM1",               // 0x06
		"0x07",              // 0x07
		"3B",                // 0x08
		"Zero",              // 0x09
		"CM3",               // 0x0A
		"0x0B",              // 0x0B
		"Zero W",            // 0x0C
		"3B+",               // 0x0D
		"3A+",               // 0x0E
		"Internal use only", // 0x0F
		"CM3+",              // 0x10
		"4B",                // 0x11
		"Zero 2 W",          // 0x12
		"400",               // 0x13
		"CM4",               // 0x14
		"CM4S",              // 0x15
	},
}

// memory sizes in MB, 8GB does not fit a 32-bit byte count
var memoryTable = lookupTable[uint32]{
	entries: []uint32{256, 512, 1 * 1024, 2 * 1024, 4 * 1024, 8 * 1024},
}

var processorTable = lookupTable[string]{
	entries: []string{"BCM2835", "BCM2836", "BCM2837", "BCM2711"},
}

// Index 15 is never emitted by new style boards. It is reserved here for
// manufacturers and revisions that only appear in translated old style codes.
const (
	qisdaIndex = 0xF
	rev2Index  = 0xF
)

var manufacturerTable = lookupTable[string]{
	entries:  []string{"Sony UK", "Egoman", "Embest", "Sony Japan", "Embest", "Stadium"},
	sentinel: &sentinel[string]{index: qisdaIndex, value: "Qisda"},
}

var revisionTable = lookupTable[string]{
	entries:  []string{"1.0", "1.1", "1.2", "1.3", "1.4", "1.5"},
	sentinel: &sentinel[string]{index: rev2Index, value: "2.0"},
}

func (c Code) bit(shift uint) bool {
	return (uint32(c)>>shift)&0x1 == 1
}

func (c Code) field(shift uint, mask uint32) uint32 {
	return (uint32(c) >> shift) & mask
}

// NewStyle reports whether the code uses the bit-field layout.
func (c Code) NewStyle() bool {
	return c.bit(styleShift)
}

// OvervoltageAllowed is true when bit 31 is clear.
func (c Code) OvervoltageAllowed() bool {
	return !c.bit(overvoltageShift)
}

// OTPProgrammingAllowed is true when bit 30 is clear.
func (c Code) OTPProgrammingAllowed() bool {
	return !c.bit(otpProgrammingShift)
}

// OTPReadingAllowed is true when bit 29 is clear.
func (c Code) OTPReadingAllowed() bool {
	return !c.bit(otpReadingShift)
}

// WarrantyIntact is true when bit 25 is clear.
func (c Code) WarrantyIntact() bool {
	return !c.bit(warrantyShift)
}

func allowedString(allowed bool) string {
	if allowed {
		return allowedStr
	}
	return disallowedStr
}

func (c Code) OvervoltageString() string {
	return allowedString(c.OvervoltageAllowed())
}

func (c Code) OTPProgrammingString() string {
	return allowedString(c.OTPProgrammingAllowed())
}

func (c Code) OTPReadingString() string {
	return allowedString(c.OTPReadingAllowed())
}

func (c Code) WarrantyString() string {
	if c.WarrantyIntact() {
		return intactStr
	}
	return voidedStr
}

func (c Code) TypeIndex() uint32 {
	return c.field(typeShift, typeMask)
}

// TypeString returns the board model name, e.g. "3B".
func (c Code) TypeString() string {
	return lookupString(typeTable, c.TypeIndex())
}

func (c Code) MemoryIndex() uint32 {
	return c.field(memoryShift, memoryMask)
}

// MemoryMBytes returns the amount of physical memory in MB. The second
// return value is false for reserved memory indices.
func (c Code) MemoryMBytes() (uint32, bool) {
	return memoryTable.lookup(c.MemoryIndex())
}

// MemoryString returns the amount of physical memory, e.g. "512MB" or "4GB".
func (c Code) MemoryString() string {
	mb, ok := c.MemoryMBytes()
	if !ok {
		return Unknown
	}
	return formatMemory(mb)
}

// formatMemory expresses mb in whole GB when there is at least 1GB, dropping
// any fraction, and in MB otherwise. Values above 9999GB yield "".
func formatMemory(mb uint32) string {
	if mb >= 1024 {
		gb := mb >> 10
		if gb > 9999 {
			return ""
		}
		return fmt.Sprintf("%dGB", gb)
	}
	return fmt.Sprintf("%dMB", mb)
}

func (c Code) ProcessorIndex() uint32 {
	return c.field(processorShift, processorMask)
}

// ProcessorString returns the SoC name, e.g. "BCM2711".
func (c Code) ProcessorString() string {
	return lookupString(processorTable, c.ProcessorIndex())
}

func (c Code) ManufacturerIndex() uint32 {
	return c.field(manufacturerShift, manufacturerMask)
}

func (c Code) ManufacturerString() string {
	return lookupString(manufacturerTable, c.ManufacturerIndex())
}

func (c Code) RevisionIndex() uint32 {
	return c.field(revisionShift, revisionMask)
}

func (c Code) RevisionString() string {
	return lookupString(revisionTable, c.RevisionIndex())
}

// String formats the code as it appears in reports, e.g. "0xA02082".
func (c Code) String() string {
	return fmt.Sprintf("0x%X", uint32(c))
}
