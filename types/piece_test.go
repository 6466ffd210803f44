/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceFromFENLetter(t *testing.T) {
	p, ok := PieceFromFENLetter('Q')
	assert.True(t, ok)
	assert.Equal(t, Piece{Kind: Queen, Color: White}, p)

	p, ok = PieceFromFENLetter('n')
	assert.True(t, ok)
	assert.Equal(t, Piece{Kind: Knight, Color: Black}, p)

	_, ok = PieceFromFENLetter('x')
	assert.False(t, ok)
}

func TestPiece_String(t *testing.T) {
	assert.Equal(t, "K", Piece{Kind: King, Color: White}.String())
	assert.Equal(t, "k", Piece{Kind: King, Color: Black}.String())
	assert.Equal(t, ".", NoPiece.String())
}
