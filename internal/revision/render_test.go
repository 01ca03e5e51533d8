package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextNewStyle(t *testing.T) {
	out, err := RenderText(0xa02082)
	require.NoError(t, err)
	expected := "Revision code 0xA02082 interpreted:\n" +
		"    Style           : New\n" +
		"    Overvoltage     : Allowed\n" +
		"    OTP Programming : Allowed\n" +
		"    OTP Reading     : Allowed\n" +
		"    Warranty        : Intact\n" +
		"    Type/Model      : 3B\n" +
		"    Revision        : 1.2\n" +
		"    Processor/SOC   : BCM2837\n" +
		"    Memory          : 1GB\n" +
		"    Manufacturer    : Sony UK\n"
	assert.Equal(t, expected, out)
}

func TestRenderTextOldStyle(t *testing.T) {
	out, err := RenderText(0x02)
	require.NoError(t, err)
	expected := "Revision code 0x2 interpreted:\n" +
		"    Style           : Old\n" +
		"    Type/Model      : B\n" +
		"    Revision        : 1.0\n" +
		"    Memory          : 256MB\n" +
		"    Manufacturer    : Egoman\n"
	assert.Equal(t, expected, out)
}

func TestRenderJSONNewStyle(t *testing.T) {
	out, err := RenderJSON(0xa02082)
	require.NoError(t, err)
	expected := `{
    "revision_code": "0xA02082",
    "style": "new",
    "overvoltage_allowed": true,
    "otp_programming_allowed": true,
    "otp_reading_allowed": true,
    "warranty_intact": true,
    "type": "3B",
    "revision": "1.2",
    "processor": "BCM2837",
    "memory": "1GB",
    "manufacturer": "Sony UK"
}
`
	assert.Equal(t, expected, out)
}

func TestRenderJSONOldStyle(t *testing.T) {
	out, err := RenderJSON(0x02)
	require.NoError(t, err)
	expected := `{
    "revision_code": "0x2",
    "style": "old",
    "type": "B",
    "revision": "1.0",
    "memory": "256MB",
    "manufacturer": "Egoman"
}
`
	assert.Equal(t, expected, out)
}

func TestRenderJSONFlagsDisallowed(t *testing.T) {
	out, err := RenderJSON(0xa02082 | 1<<31 | 1<<25)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "0x82A02082", decoded[KeyRevisionCode])
	assert.Equal(t, false, decoded[KeyOvervoltageAllowed])
	assert.Equal(t, true, decoded[KeyOTPProgrammingAllowed])
	assert.Equal(t, false, decoded[KeyWarrantyIntact])
}

func TestRenderInvalidLegacy(t *testing.T) {
	_, err := RenderText(0x0a)
	assert.True(t, errors.Is(err, ErrInvalidLegacyCode))
	_, err = RenderJSON(0x16)
	assert.True(t, errors.Is(err, ErrInvalidLegacyCode))
}

func TestFields(t *testing.T) {
	r, err := Decode(0xa02082)
	require.NoError(t, err)
	fields := r.Fields()
	var keys []string
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	// every key but the revision code itself, in report order
	assert.Equal(t, FieldKeys[1:], keys)
	assert.Equal(t, true, fields[1].Value)
	assert.Equal(t, "Allowed", fields[1].Text)

	r, err = Decode(0x05)
	require.NoError(t, err)
	assert.Equal(t, StyleOld, r.Style())
	assert.Equal(t, Code(0x05), r.Original)
	assert.True(t, r.Code.NewStyle())
	fields = r.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, "Qisda", fields[4].Value)
}
