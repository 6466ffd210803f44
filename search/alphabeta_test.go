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

func TestAlphaBeta_FindsMateInOne(t *testing.T) {
	// Classic back-rank mate: Re1-e8# (Black king boxed in by its own pawns).
	pos, err := position.ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	score, pv := st.AlphaBeta(&pos, 2, 0, -Infinity, Infinity)
	require.NotEmpty(t, pv)
	assert.True(t, score.IsMateScore())
	assert.Equal(t, SqE1, pv[0].From)
	assert.Equal(t, SqE8, pv[0].To)
}

func TestAlphaBeta_StalemateIsDraw(t *testing.T) {
	pos, err := position.ParseFEN("k7/P7/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	score, pv := st.AlphaBeta(&pos, 3, 0, -Infinity, Infinity)
	assert.Empty(t, pv)
	assert.Equal(t, DrawScore, score)
}

func TestAlphaBeta_StoresEntryInTT(t *testing.T) {
	pos := position.StartingPosition()
	st := NewState(1)
	st.AlphaBeta(&pos, 2, 0, -Infinity, Infinity)
	assert.Greater(t, st.TT.Len(), 0)
}

func TestAlphaBeta_Scenario7_FindsMateAtDepthThree(t *testing.T) {
	pos, err := position.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)
	st := NewState(1)
	score, _ := st.AlphaBeta(&pos, 3, 0, -Infinity, Infinity)
	assert.True(t, score.IsMateScore())
	assert.GreaterOrEqual(t, int(abs(score)), int(MateScore-100))
}

func TestAlphaBeta_Scenario8_BestMoveIsTheCaptureOnE4(t *testing.T) {
	pos, err := position.ParseFEN("rnb1kbnr/pppppppp/8/8/4q3/3B4/PPPPPPPP/RNBQK1NR w KQkq - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	_, pv := st.AlphaBeta(&pos, 2, 0, -Infinity, Infinity)
	require.NotEmpty(t, pv)
	assert.Equal(t, SqD3, pv[0].From)
	assert.Equal(t, SqE4, pv[0].To)
}
