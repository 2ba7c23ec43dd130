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
	"github.com/ugorji/go/codec"
	bolt "go.etcd.io/bbolt"
)

const propertiesBucket = "properties"
const dbOpenMode = 0600

// Cache stores file properties in an embedded database, so repeated runs
// during development don't have to resolve them again.
type Cache struct {
	db *bolt.DB
	ch codec.Handle
}

// OpenCache opens or creates the cache database at the given path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, dbOpenMode, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, errc := tx.CreateBucketIfNotExists([]byte(propertiesBucket))

		return errc
	})
	if err != nil {
		return nil, err
	}

	return &Cache{db: db, ch: new(codec.BincHandle)}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Properties returns the cached properties for the given file ID, and
// whether any were cached.
func (c *Cache) Properties(id string) (map[string]string, bool, error) {
	var props map[string]string

	found := false

	err := c.db.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket([]byte(propertiesBucket)).Get([]byte(id))
		if encoded == nil {
			return nil
		}

		found = true
		dec := codec.NewDecoderBytes(encoded, c.ch)

		return dec.Decode(&props)
	})

	return props, found, err
}

// StoreProperties caches the properties for the given file ID, replacing any
// previously cached ones.
func (c *Cache) StoreProperties(id string, props map[string]string) error {
	var encoded []byte

	enc := codec.NewEncoderBytes(&encoded, c.ch)
	if err := enc.Encode(props); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(propertiesBucket)).Put([]byte(id), encoded)
	})
}

// CachedSource wraps a Source, memoising Properties() lookups in a Cache.
// Fetch() calls pass straight through.
type CachedSource struct {
	src   Source
	cache *Cache
}

// NewCachedSource returns a CachedSource backed by the given Source and
// Cache.
func NewCachedSource(src Source, cache *Cache) *CachedSource {
	return &CachedSource{src: src, cache: cache}
}

// Properties returns the cached properties for the file, asking the
// underlying Source and caching the answer on a miss.
func (s *CachedSource) Properties(id string) (map[string]string, error) {
	props, found, err := s.cache.Properties(id)
	if err != nil {
		return nil, err
	}

	if found {
		return props, nil
	}

	if props, err = s.src.Properties(id); err != nil {
		return nil, err
	}

	return props, s.cache.StoreProperties(id, props)
}

// Fetch materialises the file via the underlying Source.
func (s *CachedSource) Fetch(id, dir string) (string, int64, error) {
	return s.src.Fetch(id, dir)
}
