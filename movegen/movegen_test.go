/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

func containsMove(moves []Move, from, to Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

func TestGenerateLegalMoves_StartingPosition(t *testing.T) {
	pos := position.StartingPosition()
	moves := GenerateLegalMoves(&pos)
	assert.Len(t, moves, 20)
	assert.True(t, containsMove(moves, SqE2, SqE4))
	assert.True(t, containsMove(moves, SqG1, SqF3))
	assert.False(t, containsMove(moves, SqF1, SqA6))
}

func TestGenerateLegalMoves_EnPassant(t *testing.T) {
	pos, err := position.ParseFEN("rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(&pos)
	assert.True(t, containsMove(moves, SqF5, SqE6))

	noEP, err := position.ParseFEN("rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	movesNoEP := GenerateLegalMoves(&noEP)
	assert.False(t, containsMove(movesNoEP, SqF5, SqE6))
}

func TestGenerateLegalMoves_Castling(t *testing.T) {
	pos, err := position.ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(&pos)
	assert.True(t, containsMove(moves, SqE1, SqG1))
	assert.True(t, containsMove(moves, SqE1, SqC1))

	restricted, err := position.ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w kq - 0 1")
	require.NoError(t, err)
	movesRestricted := GenerateLegalMoves(&restricted)
	assert.False(t, containsMove(movesRestricted, SqE1, SqG1))
	assert.False(t, containsMove(movesRestricted, SqE1, SqC1))
}

func TestGenerateLegalMoves_CastlingThroughCheck(t *testing.T) {
	pos, err := position.ParseFEN("r3k2r/pppp1ppp/8/4r3/8/8/PPPP1PPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(&pos)
	assert.False(t, containsMove(moves, SqE1, SqG1))
}

func TestGenerateLegalMoves_PromotionFourKinds(t *testing.T) {
	pos, err := position.ParseFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(&pos)
	var fromA7 []Move
	for _, m := range moves {
		if m.From == SqA7 {
			fromA7 = append(fromA7, m)
		}
	}
	assert.Len(t, fromA7, 4)
	seen := map[PieceKind]bool{}
	for _, m := range fromA7 {
		seen[m.Promotion] = true
	}
	assert.True(t, seen[Queen])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Knight])
}

func TestIsCheckmate_FoolsMate(t *testing.T) {
	pos, err := position.ParseFEN("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, IsCheckmate(&pos))
	assert.Empty(t, GenerateLegalMoves(&pos))
}

func TestIsStalemate(t *testing.T) {
	// Classic stalemate: Black king on a8 boxed in by White king b6 and pawn a7.
	pos, err := position.ParseFEN("k7/P7/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsStalemate(&pos))
	assert.False(t, IsCheckmate(&pos))
}
