package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformed is returned when the text is not a hexadecimal number.
	ErrMalformed = errors.New("could not parse revision code")
	// ErrOverflow is returned when the value does not fit in 32 bits.
	ErrOverflow = errors.New("revision code larger than 32 bits")
)

// Parse converts hexadecimal text, with or without a "0x" or "0X" prefix,
// to a Code. Surrounding whitespace is ignored.
func Parse(text string) (Code, error) {
	hexStr := strings.TrimSpace(text)
	if strings.HasPrefix(hexStr, "0x") || strings.HasPrefix(hexStr, "0X") {
		hexStr = hexStr[2:]
	}
	value, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(ErrOverflow, "%q", text)
		}
		return 0, errors.Wrapf(ErrMalformed, "%q", text)
	}
	return Code(value), nil
}
