/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopp-chess/chessgo/position"
)

func TestHash_DependsOnlyOnPosition(t *testing.T) {
	pos := position.StartingPosition()
	a := Hash(&pos)
	b := Hash(&pos)
	assert.Equal(t, a, b)

	same, err := position.ParseFEN(position.StartingFEN)
	assert.NoError(t, err)
	assert.Equal(t, a, Hash(&same))
}

func TestHash_DiffersOnSideToMove(t *testing.T) {
	pos := position.StartingPosition()
	white := Hash(&pos)
	pos.SideToMove = pos.SideToMove.Flip()
	black := Hash(&pos)
	assert.NotEqual(t, white, black)
}

func TestHash_DiffersOnCastlingRights(t *testing.T) {
	pos := position.StartingPosition()
	before := Hash(&pos)
	pos.Castling.WhiteKing = false
	after := Hash(&pos)
	assert.NotEqual(t, before, after)
}
