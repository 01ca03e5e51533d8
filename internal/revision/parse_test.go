package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Code
		err      error
	}{
		{"0xa02082", 0xa02082, nil},
		{"a02082", 0xa02082, nil},
		{"0XA02082", 0xa02082, nil},
		{"A02082", 0xa02082, nil},
		{"2", 0x2, nil},
		{"0x0002", 0x2, nil},
		{" 0xc03111\n", 0xc03111, nil},
		{"FFFFFFFF", 0xFFFFFFFF, nil},
		{"00000000FFFFFFFF", 0xFFFFFFFF, nil},
		{"100000000", 0, ErrOverflow},
		{"0x1234567890", 0, ErrOverflow},
		{"xyz", 0, ErrMalformed},
		{"", 0, ErrMalformed},
		{"0x", 0, ErrMalformed},
		{"-1", 0, ErrMalformed},
		{"12 34", 0, ErrMalformed},
		{"0x_12", 0, ErrMalformed},
	}
	for _, tt := range tests {
		code, err := Parse(tt.input)
		if tt.err != nil {
			assert.True(t, errors.Is(err, tt.err), "input %q: got %v", tt.input, err)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, code, "input %q", tt.input)
	}
}

func TestParseErrorMentionsInput(t *testing.T) {
	_, err := Parse("nothex")
	assert.EqualError(t, err, `"nothex": could not parse revision code`)
	_, err = Parse("123456789")
	assert.EqualError(t, err, `"123456789": revision code larger than 32 bits`)
}
