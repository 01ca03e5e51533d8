/*
Package util includes file and path helpers shared by the commands.
*/
package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandUser expands '~' to user's home directory, if found, otherwise returns original path
func ExpandUser(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}
	if path == "~" {
		return usr.HomeDir
	} else if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(usr.HomeDir, path[2:])
	}
	return path
}

// AbsPath returns absolute path after expanding '~' to user's home dir
func AbsPath(path string) (string, error) {
	return filepath.Abs(ExpandUser(path))
}

// DirectoryExists checks if the specified directory exists.
// It returns a boolean indicating whether the directory exists and an error if the
// path refers to anything other than a directory, e.g., a regular file.
func DirectoryExists(path string) (exists bool, err error) {
	var fileInfo fs.FileInfo
	fileInfo, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			exists = false
			err = nil
			return
		}
		return
	}
	if !fileInfo.Mode().IsDir() {
		err = fmt.Errorf("%s not a directory", path)
		return
	}
	exists = true
	return
}

// WriteOutputFile writes data to path, which may start with '~'. The parent
// directory must already exist.
func WriteOutputFile(path string, data []byte) (string, error) {
	absPath, err := AbsPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand output path %s: %w", path, err)
	}
	exists, err := DirectoryExists(filepath.Dir(absPath))
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("output directory %s does not exist", filepath.Dir(absPath))
	}
	err = os.WriteFile(absPath, data, 0644) // #nosec G306
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", absPath, err)
	}
	return absPath, nil
}
