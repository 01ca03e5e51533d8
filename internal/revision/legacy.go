package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"github.com/pkg/errors"
)

// ErrInvalidLegacyCode is returned for old style codes with no translation.
var ErrInvalidLegacyCode = errors.New("invalid old style revision code")

// field values used to assemble translated old style codes
const (
	sonyUK  Code = 0 << manufacturerShift
	egoman  Code = 1 << manufacturerShift
	embest  Code = 2 << manufacturerShift
	qisda   Code = qisdaIndex << manufacturerShift
	mem256M Code = 0 << memoryShift
	mem512M Code = 1 << memoryShift

	modelA     Code = 0 << typeShift
	modelB     Code = 1 << typeShift
	modelAPlus Code = 2 << typeShift
	modelBPlus Code = 3 << typeShift
	modelCM1   Code = 6 << typeShift

	rev1_0 Code = 0 << revisionShift
	rev1_1 Code = 1 << revisionShift
	rev1_2 Code = 2 << revisionShift
	rev2_0 Code = rev2Index << revisionShift

	// marks table slots with no old style code assigned
	legacyInvalid Code = 0xFFFFFFFF
)

// legacyTable translates an old style code, used as the index, to the
// equivalent new style code. All old style boards carry a BCM2835.
var legacyTable = [...]Code{
	0x00: legacyInvalid,
	0x01: legacyInvalid,
	0x02: StyleBit | modelB | rev1_0 | mem256M | egoman,
	0x03: StyleBit | modelB | rev1_0 | mem256M | egoman,
	0x04: StyleBit | modelB | rev2_0 | mem256M | sonyUK,
	0x05: StyleBit | modelB | rev2_0 | mem256M | qisda,
	0x06: StyleBit | modelB | rev2_0 | mem256M | egoman,
	0x07: StyleBit | modelA | rev2_0 | mem256M | egoman,
	0x08: StyleBit | modelA | rev2_0 | mem256M | sonyUK,
	0x09: StyleBit | modelA | rev2_0 | mem256M | qisda,
	0x0a: legacyInvalid,
	0x0b: legacyInvalid,
	0x0c: legacyInvalid,
	0x0d: StyleBit | modelB | rev2_0 | mem512M | egoman,
	0x0e: StyleBit | modelB | rev2_0 | mem512M | sonyUK,
	0x0f: StyleBit | modelB | rev2_0 | mem512M | egoman,
	0x10: StyleBit | modelBPlus | rev1_2 | mem512M | sonyUK,
	0x11: StyleBit | modelCM1 | rev1_0 | mem512M | sonyUK,
	0x12: StyleBit | modelAPlus | rev1_1 | mem256M | sonyUK,
	0x13: StyleBit | modelBPlus | rev1_2 | mem512M | embest,
	0x14: StyleBit | modelCM1 | rev1_0 | mem512M | embest,
	// shipped with 256MB or 512MB under the same code, report the lower
	0x15: StyleBit | modelAPlus | rev1_1 | mem256M | embest,
}

// Normalize returns the new style equivalent of code. New style codes are
// returned unchanged.
func Normalize(code Code) (Code, error) {
	if code.NewStyle() {
		return code, nil
	}
	if uint64(code) < uint64(len(legacyTable)) {
		if translated := legacyTable[code]; translated != legacyInvalid {
			return translated, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidLegacyCode, "revision code %s", code)
}

// LegacyCodes returns all old style codes that have a translation, in
// ascending order.
func LegacyCodes() []Code {
	var codes []Code
	for i, translated := range legacyTable {
		if translated != legacyInvalid {
			codes = append(codes, Code(i))
		}
	}
	return codes
}
