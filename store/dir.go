/*******************************************************************************
 * Copyright (c) 2025 St. Jude Children's Research Hospital.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
	"github.com/stjudecloud/merge-counts/fs"
)

const ErrCacheMissing = Error("cache directory pointed to no longer exists")

const cachePointerBasename = ".mergecounts-cache"
const userOnlyPerm = 0700
const pointerPerm = 0600

// CacheDir returns the directory used for cached downloads and databases,
// creating it the first time. Its location is remembered via a pointer file
// in the user's home directory, as repeated developer-mode runs must share
// it.
func CacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	pointer := filepath.Join(home, cachePointerBasename)

	data, err := os.ReadFile(pointer)
	if err == nil {
		return existingCacheDir(data, pointer)
	}

	if !os.IsNotExist(err) {
		return "", err
	}

	return createCacheDir(pointer)
}

// existingCacheDir extracts the cache directory from the pointer file's
// contents, its first line, and confirms it still exists.
func existingCacheDir(data []byte, pointer string) (string, error) {
	dir, _, _ := strings.Cut(string(data), "\n")
	dir = strings.TrimSpace(dir)

	if !fs.PathExists(dir) {
		return "", fmt.Errorf("%w: %s (from %s)", ErrCacheMissing, dir, pointer)
	}

	return dir, nil
}

// createCacheDir makes a fresh cache directory and records its location in
// the pointer file.
func createCacheDir(pointer string) (string, error) {
	dir := filepath.Join(os.TempDir(), "mergecounts-cache-"+xid.New().String())

	if err := os.MkdirAll(dir, userOnlyPerm); err != nil {
		return "", err
	}

	return dir, os.WriteFile(pointer, []byte(dir+"\n"), pointerPerm)
}

// StagingDir creates and returns a fresh uniquely named directory for
// fetched input files, for runs without the developer-mode cache. Delete it
// when the run completes.
func StagingDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "mergecounts-"+xid.New().String())

	return dir, os.MkdirAll(dir, userOnlyPerm)
}
