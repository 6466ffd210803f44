/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

func TestSearch_FindsBackRankMate(t *testing.T) {
	pos, err := position.ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	r := st.Search(&pos, Options{MaxDepth: 4, MaxTimeMs: 2000})
	assert.Equal(t, SqE1, r.BestMove.From)
	assert.Equal(t, SqE8, r.BestMove.To)
	assert.True(t, r.Evaluation.IsMateScore())
	assert.NotEmpty(t, r.Explanation)
}

func TestSearch_ReturnsLegalMoveWhenDepthZero(t *testing.T) {
	pos := position.StartingPosition()
	st := NewState(1)
	r := st.Search(&pos, Options{MaxDepth: 0, MaxTimeMs: 1000})
	assert.False(t, r.BestMove.IsNone())
}

func TestSearch_EvaluationIsWhitePOV(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K3 b Q - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	r := st.Search(&pos, Options{MaxDepth: 2, MaxTimeMs: 1000})
	assert.Greater(t, r.Evaluation, Value(0))
}
