// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if a regular file exists
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}

// EnsureDirectory - make the path absolute relative to directory and
// create it if it does not already exist
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}

// IsPlainName - true if the name has no directory part
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name
	default:
		return false
	}
}
