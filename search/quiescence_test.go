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

func TestQuiesce_QuietPositionReturnsStandPat(t *testing.T) {
	pos := position.StartingPosition()
	st := NewState(1)
	score := st.Quiesce(&pos, -Infinity, Infinity)
	assert.Equal(t, relativeEval(&pos), score)
}

func TestQuiesce_TakesFreeHangingQueen(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	st := NewState(1)
	score := st.Quiesce(&pos, -Infinity, Infinity)
	assert.Greater(t, score, Value(500))
}
