// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package cpuinfo extracts Raspberry Pi revision codes from /proc/cpuinfo
// style text and from line oriented input.
package cpuinfo

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPath is where the kernel reports the board revision.
const DefaultPath = "/proc/cpuinfo"

// ErrNoRevision is returned when the input has no "Revision : <code>" line.
var ErrNoRevision = errors.New("no revision line found")

var revisionRegex = regexp.MustCompile(`^Revision\s*:\s*(\S+)`)

// ReadRevision returns the revision token from the cpuinfo file at path.
func ReadRevision(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", errors.Wrap(err, "failed to open cpuinfo")
	}
	defer file.Close()
	revision, err := ParseRevision(file)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read revision from %s", path)
	}
	slog.Debug("read revision from cpuinfo", slog.String("path", path), slog.String("revision", revision))
	return revision, nil
}

// ParseRevision scans r for the first "Revision : <code>" line and returns
// the code token.
func ParseRevision(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := revisionRegex.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if len(match) > 1 {
			return match[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrNoRevision
}

// ReadCodes returns one revision code per non-blank line of r. Lines
// starting with '#' are skipped.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read revision codes")
	}
	return codes, nil
}
