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

func TestSquare_String(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{SqA1, "a1"},
		{SqE4, "e4"},
		{SqH8, "h8"},
		{SqNone, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sq.String())
	}
}

func TestParseSquare(t *testing.T) {
	assert.Equal(t, SqE4, ParseSquare("e4"))
	assert.Equal(t, SqA1, ParseSquare("a1"))
	assert.Equal(t, SqNone, ParseSquare("z9"))
	assert.Equal(t, SqNone, ParseSquare("e"))
}

func TestSquare_To(t *testing.T) {
	assert.Equal(t, SqE4, SqE2.To(North).To(North))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqH4.To(Northeast))
	assert.Equal(t, SqG5, SqH4.To(Northwest))
}

func TestSquare_KnightStep(t *testing.T) {
	// knight on b1 to a3 and c3 are valid; from a1, stepping off the board
	// or wrapping to the h-file (a1+15 = h2) must fail.
	assert.Equal(t, SqA3, SqB1.KnightStep(15))
	assert.Equal(t, SqC3, SqB1.KnightStep(17))
	assert.Equal(t, SqNone, SqA1.KnightStep(-17))
	assert.Equal(t, SqNone, SqA1.KnightStep(15))
}

func TestSquare_MirrorVertical(t *testing.T) {
	assert.Equal(t, SqE1, SqE8.MirrorVertical())
	assert.Equal(t, SqA8, SqA1.MirrorVertical())
}

func TestFileRank(t *testing.T) {
	assert.Equal(t, 4, File(SqE4))
	assert.Equal(t, 3, Rank(SqE4))
	assert.Equal(t, SqE4, MakeSq(4, 3))
}
