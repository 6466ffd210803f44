/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopp-chess/chessgo/types"
	"github.com/kopp-chess/chessgo/zobrist"
)

func TestTable_ProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	_, ok := tt.Probe(zobrist.Key(42))
	assert.False(t, ok)
	assert.EqualValues(t, 1, tt.Stats.Misses)
}

func TestTable_StoreThenProbeHits(t *testing.T) {
	tt := NewTable(1)
	mv := Move{From: SqE2, To: SqE4, Piece: Piece{Kind: Pawn, Color: White}}
	tt.Store(zobrist.Key(7), mv, Value(123), 4, BoundExact)

	e, ok := tt.Probe(zobrist.Key(7))
	assert.True(t, ok)
	assert.Equal(t, Value(123), e.Value)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
	assert.Equal(t, mv, e.Move)
}

func TestTable_ShallowerStoreIsRejectedAsCollision(t *testing.T) {
	tt := NewTable(1)
	tt.Store(zobrist.Key(7), NoMove, Value(100), 6, BoundExact)
	tt.Store(zobrist.Key(7), NoMove, Value(999), 2, BoundExact)

	e, ok := tt.Probe(zobrist.Key(7))
	assert.True(t, ok)
	assert.Equal(t, Value(100), e.Value, "shallower store must not overwrite a deeper entry")
	assert.EqualValues(t, 1, tt.Stats.Collisions)
}

func TestTable_DeeperStoreOverwrites(t *testing.T) {
	tt := NewTable(1)
	tt.Store(zobrist.Key(7), NoMove, Value(100), 2, BoundExact)
	tt.Store(zobrist.Key(7), NoMove, Value(999), 6, BoundExact)

	e, ok := tt.Probe(zobrist.Key(7))
	assert.True(t, ok)
	assert.Equal(t, Value(999), e.Value)
	assert.EqualValues(t, 1, tt.Stats.Overwrites)
}

func TestTable_EvictsOldestWhenFull(t *testing.T) {
	tt := &Table{capacity: 10, entries: make(map[zobrist.Key]*Entry)}

	for i := 0; i < 10; i++ {
		tt.Store(zobrist.Key(i), NoMove, Value(i), 1, BoundExact)
	}
	assert.Equal(t, 10, tt.Len())

	tt.Store(zobrist.Key(100), NoMove, Value(100), 1, BoundExact)
	assert.LessOrEqual(t, tt.Len(), 10)
	assert.Greater(t, tt.Stats.Evictions, uint64(0))

	_, ok := tt.Probe(zobrist.Key(0))
	assert.False(t, ok, "key 0 was inserted first and should have been evicted")
}

func TestTable_Clear(t *testing.T) {
	tt := NewTable(1)
	tt.Store(zobrist.Key(1), NoMove, Value(1), 1, BoundExact)
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe(zobrist.Key(1))
	assert.False(t, ok)
}

func TestTable_Hashfull(t *testing.T) {
	tt := &Table{capacity: 100, entries: make(map[zobrist.Key]*Entry)}
	for i := 0; i < 25; i++ {
		tt.Store(zobrist.Key(i), NoMove, Value(0), 1, BoundExact)
	}
	assert.Equal(t, 250, tt.Hashfull())
}
