/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements a bounded associative cache of
// prior search results keyed by Zobrist hash. Table is not thread safe and
// needs to be synchronized externally if used from multiple goroutines;
// this is especially relevant for Resize and Clear, which must not be
// called while a search is probing or storing concurrently.
package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopp-chess/chessgo/logging"
	. "github.com/kopp-chess/chessgo/types"
	"github.com/kopp-chess/chessgo/zobrist"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("tt")

// BytesPerEntry approximates the in-memory footprint of one Entry plus its
// map/bookkeeping overhead, used to translate a megabyte budget into an
// entry-count capacity.
const BytesPerEntry = 100

// DefaultSizeMB is the default transposition table capacity.
const DefaultSizeMB = 64

// evictionFraction is the share of entries dropped, oldest-inserted first,
// when a new position must be stored but the table is already full.
const evictionFraction = 0.10

// Bound records which side of the true minimax value a stored Value
// represents, matching the classic alpha-beta bound taxonomy.
type Bound uint8

const (
	// BoundNone marks an empty or invalid entry.
	BoundNone Bound = iota
	// BoundExact means Value is the position's true minimax value.
	BoundExact
	// BoundLower means Value is a lower bound (a beta cutoff occurred).
	BoundLower
	// BoundUpper means Value is an upper bound (no move exceeded alpha).
	BoundUpper
)

// Entry is one stored search result.
type Entry struct {
	Key   zobrist.Key
	Move  Move
	Value Value
	Depth int
	Bound Bound
}

// Stats holds observability counters for table usage.
type Stats struct {
	Probes     uint64
	Hits       uint64
	Misses     uint64
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Evictions  uint64
}

// Table is the transposition table.
type Table struct {
	capacity int
	entries  map[zobrist.Key]*Entry
	order    []zobrist.Key
	Stats    Stats
}

// NewTable creates a Table sized to hold roughly sizeInMByte megabytes of
// entries.
func NewTable(sizeInMByte int) *Table {
	t := &Table{}
	t.Resize(sizeInMByte)
	return t
}

// Resize rebuilds the table for a new megabyte budget. All entries and
// statistics are cleared.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}
	t.capacity = (sizeInMByte * 1024 * 1024) / BytesPerEntry
	t.entries = make(map[zobrist.Key]*Entry, t.capacity)
	t.order = t.order[:0]
	t.Stats = Stats{}
	log.Info(out.Sprintf("TT resized to %d MB, capacity %d entries", sizeInMByte, t.capacity))
}

// Clear empties the table without changing its capacity.
func (t *Table) Clear() {
	t.entries = make(map[zobrist.Key]*Entry, t.capacity)
	t.order = t.order[:0]
	t.Stats = Stats{}
}

// Probe looks up key. The second return value is false on a miss.
func (t *Table) Probe(key zobrist.Key) (*Entry, bool) {
	t.Stats.Probes++
	e, ok := t.entries[key]
	if !ok {
		t.Stats.Misses++
		return nil, false
	}
	t.Stats.Hits++
	return e, true
}

// Store records a search result for key. If an entry already exists for
// key and its stored depth is strictly greater than depth, the existing
// entry is kept and the store is counted as a collision; otherwise the
// entry is written (as a fresh insertion, or an overwrite of the existing
// one). When inserting a brand new key into a table already at capacity,
// the oldest ~10% of entries (by insertion order) are evicted first.
func (t *Table) Store(key zobrist.Key, move Move, value Value, depth int, bound Bound) {
	if t.capacity == 0 {
		return
	}
	t.Stats.Puts++

	if existing, ok := t.entries[key]; ok {
		if existing.Depth > depth {
			t.Stats.Collisions++
			return
		}
		t.Stats.Overwrites++
		existing.Move = move
		existing.Value = value
		existing.Depth = depth
		existing.Bound = bound
		return
	}

	if len(t.entries) >= t.capacity {
		t.evict()
	}

	t.entries[key] = &Entry{Key: key, Move: move, Value: value, Depth: depth, Bound: bound}
	t.order = append(t.order, key)
}

func (t *Table) evict() {
	n := int(float64(t.capacity) * evictionFraction)
	if n < 1 {
		n = 1
	}
	if n > len(t.order) {
		n = len(t.order)
	}
	for i := 0; i < n; i++ {
		delete(t.entries, t.order[i])
		t.Stats.Evictions++
	}
	t.order = t.order[n:]
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hashfull returns how full the table is, in permille, as commonly
// reported by UCI-style engines.
func (t *Table) Hashfull() int {
	if t.capacity == 0 {
		return 0
	}
	return (1000 * len(t.entries)) / t.capacity
}

// String returns a human-readable summary of table size and statistics.
func (t *Table) String() string {
	return out.Sprintf("TT: capacity %d entries, used %d (%d permille), "+
		"puts %d overwrites %d collisions %d evictions %d probes %d hits %d misses %d",
		t.capacity, len(t.entries), t.Hashfull(),
		t.Stats.Puts, t.Stats.Overwrites, t.Stats.Collisions, t.Stats.Evictions,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
