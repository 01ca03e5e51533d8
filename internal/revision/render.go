package revision

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	StyleOld = "old"
	StyleNew = "new"
)

// field keys, in report order
const (
	KeyRevisionCode          = "revision_code"
	KeyStyle                 = "style"
	KeyOvervoltageAllowed    = "overvoltage_allowed"
	KeyOTPProgrammingAllowed = "otp_programming_allowed"
	KeyOTPReadingAllowed     = "otp_reading_allowed"
	KeyWarrantyIntact        = "warranty_intact"
	KeyType                  = "type"
	KeyRevision              = "revision"
	KeyProcessor             = "processor"
	KeyMemory                = "memory"
	KeyManufacturer          = "manufacturer"
)

// FieldKeys lists every key a decoded revision can carry, in report order.
var FieldKeys = []string{
	KeyRevisionCode,
	KeyStyle,
	KeyOvervoltageAllowed,
	KeyOTPProgrammingAllowed,
	KeyOTPReadingAllowed,
	KeyWarrantyIntact,
	KeyType,
	KeyRevision,
	KeyProcessor,
	KeyMemory,
	KeyManufacturer,
}

const textFieldFormat = "    %-16s: %s\n"

// Revision is a decoded revision code. Original holds the code as supplied,
// Code its new style equivalent.
type Revision struct {
	Original Code
	Code     Code
}

// Field is one decoded value. Text is the human readable form, Value the
// machine readable one (bool or string).
type Field struct {
	Key   string
	Label string
	Text  string
	Value any
}

// Decode normalizes code and returns the decoded revision.
func Decode(code Code) (Revision, error) {
	normalized, err := Normalize(code)
	if err != nil {
		return Revision{}, err
	}
	return Revision{Original: code, Code: normalized}, nil
}

// Style returns "old" or "new" for the code as originally supplied.
func (r Revision) Style() string {
	if r.Original.NewStyle() {
		return StyleNew
	}
	return StyleOld
}

func stringField(key, label, value string) Field {
	return Field{Key: key, Label: label, Text: value, Value: value}
}

func flagField(key, label string, value bool, text string) Field {
	return Field{Key: key, Label: label, Text: text, Value: value}
}

// Fields returns the decoded values in report order, excluding the revision
// code itself. The feature flags and processor are only present for codes
// that were supplied in new style; old style boards never encoded them.
func (r Revision) Fields() []Field {
	c := r.Code
	newStyle := r.Original.NewStyle()
	fields := []Field{
		{Key: KeyStyle, Label: "Style", Text: cases.Title(language.English).String(r.Style()), Value: r.Style()},
	}
	if newStyle {
		fields = append(fields,
			flagField(KeyOvervoltageAllowed, "Overvoltage", c.OvervoltageAllowed(), c.OvervoltageString()),
			flagField(KeyOTPProgrammingAllowed, "OTP Programming", c.OTPProgrammingAllowed(), c.OTPProgrammingString()),
			flagField(KeyOTPReadingAllowed, "OTP Reading", c.OTPReadingAllowed(), c.OTPReadingString()),
			flagField(KeyWarrantyIntact, "Warranty", c.WarrantyIntact(), c.WarrantyString()),
		)
	}
	fields = append(fields,
		stringField(KeyType, "Type/Model", c.TypeString()),
		stringField(KeyRevision, "Revision", c.RevisionString()),
	)
	if newStyle {
		fields = append(fields, stringField(KeyProcessor, "Processor/SOC", c.ProcessorString()))
	}
	fields = append(fields,
		stringField(KeyMemory, "Memory", c.MemoryString()),
		stringField(KeyManufacturer, "Manufacturer", c.ManufacturerString()),
	)
	return fields
}

// Text renders the revision as a labelled, multi-line report.
func (r Revision) Text() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Revision code %s interpreted:\n", r.Original))
	for _, field := range r.Fields() {
		sb.WriteString(fmt.Sprintf(textFieldFormat, field.Label, field.Text))
	}
	return sb.String()
}

// jsonRevision fixes the JSON field order. Pointer fields are omitted for
// old style codes.
type jsonRevision struct {
	RevisionCode          string  `json:"revision_code"`
	Style                 string  `json:"style"`
	OvervoltageAllowed    *bool   `json:"overvoltage_allowed,omitempty"`
	OTPProgrammingAllowed *bool   `json:"otp_programming_allowed,omitempty"`
	OTPReadingAllowed     *bool   `json:"otp_reading_allowed,omitempty"`
	WarrantyIntact        *bool   `json:"warranty_intact,omitempty"`
	Type                  string  `json:"type"`
	Revision              string  `json:"revision"`
	Processor             *string `json:"processor,omitempty"`
	Memory                string  `json:"memory"`
	Manufacturer          string  `json:"manufacturer"`
}

// JSON renders the revision as a single indented JSON object.
func (r Revision) JSON() (string, error) {
	c := r.Code
	out := jsonRevision{
		RevisionCode: r.Original.String(),
		Style:        r.Style(),
		Type:         c.TypeString(),
		Revision:     c.RevisionString(),
		Memory:       c.MemoryString(),
		Manufacturer: c.ManufacturerString(),
	}
	if r.Original.NewStyle() {
		overvoltage := c.OvervoltageAllowed()
		otpProgramming := c.OTPProgrammingAllowed()
		otpReading := c.OTPReadingAllowed()
		warranty := c.WarrantyIntact()
		processor := c.ProcessorString()
		out.OvervoltageAllowed = &overvoltage
		out.OTPProgrammingAllowed = &otpProgramming
		out.OTPReadingAllowed = &otpReading
		out.WarrantyIntact = &warranty
		out.Processor = &processor
	}
	js, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", err
	}
	return string(js) + "\n", nil
}

// RenderText decodes code and renders it as text.
func RenderText(code Code) (string, error) {
	r, err := Decode(code)
	if err != nil {
		return "", err
	}
	return r.Text(), nil
}

// RenderJSON decodes code and renders it as JSON.
func RenderJSON(code Code) (string, error) {
	r, err := Decode(code)
	if err != nil {
		return "", err
	}
	return r.JSON()
}
