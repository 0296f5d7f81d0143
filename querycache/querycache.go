// Package querycache implements spec §4.7: a process-wide, hash-keyed cache of validated
// documents. A miss costs a lex+parse+validate pass; a hit skips straight to planning. Per spec
// §9's open "cache eviction" question, this core picks a bounded LRU (hashicorp/golang-lru/v2) —
// unbounded growth from an adversarial stream of distinct query strings is a worse failure mode
// than evicting a hot query occasionally.
package querycache

import (
	"crypto/sha256"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack"

	"github.com/relgqlx/relgraph/ast"
)

// DefaultCapacity is used by New when the caller has no specific sizing requirement.
const DefaultCapacity = 4096

// Cache maps a query string's hash to its validated, position-free Document, msgpack-encoded
// (spec §4.7 "serialized validated Document") so a cached entry holds one compact []byte rather
// than a second live copy of the AST's pointer graph.
type Cache struct {
	lru *lru.Cache[uint64, []byte]
}

// New returns a Cache bounded to capacity entries. capacity <= 0 uses DefaultCapacity.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := lru.New[uint64, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Hash is the 64-bit key spec §4.7 keys entries by: the low 8 bytes of SHA-256 over the raw query
// text. Collisions are possible in principle but the source text is never compared on a hit
// (spec's stated model), trading a vanishingly small risk of a false hit for avoiding keeping the
// full query text resident.
func Hash(query []byte) uint64 {
	sum := sha256.Sum256(query)
	return binary.BigEndian.Uint64(sum[:8])
}

// Get returns the cached Document for query's hash, decoding it fresh each time (decode is cheap
// relative to lex+parse+validate, and keeps cache entries immutable byte strings rather than
// shared mutable ASTs two concurrent requests could race on).
func (c *Cache) Get(hash uint64) (*ast.Document, bool) {
	encoded, ok := c.lru.Get(hash)
	if !ok {
		return nil, false
	}
	var w wireDocument
	if err := msgpack.Unmarshal(encoded, &w); err != nil {
		return nil, false
	}
	return fromWire(w), true
}

// Put stores doc under hash, encoding it to msgpack via its interface-free wireDocument mirror
// (see wire.go). An encode failure (not expected for a validated Document) simply skips the cache
// write rather than failing the request.
func (c *Cache) Put(hash uint64, doc *ast.Document) {
	encoded, err := msgpack.Marshal(toWire(doc))
	if err != nil {
		return
	}
	c.lru.Add(hash, encoded)
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int { return c.lru.Len() }
