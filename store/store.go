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

// package store provides access to the count files and file metadata that
// matrix inputs are fetched from.

package store

type Error string

func (e Error) Error() string { return string(e) }

// SampleNameKey is the property holding a file's sample name.
const SampleNameKey = "sample_name"

// DatasetsKey is the property holding the datasets a file belongs to, comma
// separated.
const DatasetsKey = "sj_datasets"

// Source provides count files and the metadata properties recorded against
// them. Implementations resolve platform file IDs; the local implementation
// treats IDs as filesystem paths.
type Source interface {
	// Properties returns the metadata properties recorded for the file.
	Properties(id string) (map[string]string, error)

	// Fetch materialises the file in dir, returning the path of the copy
	// and its size in bytes.
	Fetch(id, dir string) (string, int64, error)
}
