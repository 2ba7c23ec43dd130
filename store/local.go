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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stjudecloud/merge-counts/fs"
)

const ErrFileNotFound = Error("file not found")
const ErrBadManifest = Error("invalid manifest line")

const manifestMinCols = 1

// Local is a Source whose file IDs are paths on the local filesystem, with
// properties optionally supplied by a manifest file.
//
// Manifest lines are tab separated: the file's path, then any number of
// key=value properties. Files not in the manifest get a sample_name derived
// from their base name.
type Local struct {
	props map[string]map[string]string
}

// NewLocal returns a Local source. manifestPath may be blank if there is no
// manifest.
func NewLocal(manifestPath string) (*Local, error) {
	l := &Local{props: make(map[string]map[string]string)}

	if manifestPath == "" {
		return l, nil
	}

	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0

	for scanner.Scan() {
		line++

		if err := l.parseManifestLine(scanner.Text(), manifestPath, line); err != nil {
			return nil, err
		}
	}

	return l, scanner.Err()
}

// parseManifestLine records the properties of one manifest entry. Blank
// lines and # comments are ignored.
func (l *Local) parseManifestLine(text, path string, line int) error {
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	cols := strings.Split(text, "\t")
	if len(cols) < manifestMinCols || cols[0] == "" {
		return fmt.Errorf("%w: %s:%d", ErrBadManifest, path, line)
	}

	props := make(map[string]string)

	for _, col := range cols[1:] {
		key, value, ok := strings.Cut(col, "=")
		if !ok {
			return fmt.Errorf("%w: %s:%d: %q is not key=value", ErrBadManifest, path, line, col)
		}

		props[key] = value
	}

	l.props[cols[0]] = props

	return nil
}

// Properties returns the manifest properties for the given path. Paths
// absent from the manifest get a sample_name derived from the base name of
// the path, with the file extension removed.
func (l *Local) Properties(id string) (map[string]string, error) {
	if !fs.PathExists(id) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}

	props := make(map[string]string)

	for key, value := range l.props[id] {
		props[key] = value
	}

	if props[SampleNameKey] == "" {
		base := filepath.Base(id)
		props[SampleNameKey] = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return props, nil
}

// Fetch copies the file at the given path in to dir and returns the path of
// the copy and its size in bytes.
func (l *Local) Fetch(id, dir string) (string, int64, error) {
	if !fs.PathExists(id) {
		return "", 0, fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}

	dest := filepath.Join(dir, filepath.Base(id))

	size, err := fs.CopyFile(id, dest)
	if err != nil {
		return "", 0, err
	}

	return dest, size, nil
}
