/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

func findMove(t *testing.T, pos *position.Position, from, to string) Move {
	t.Helper()
	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.From.String() == from && m.To.String() == to {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s", from, to)
	return NoMove
}

func TestMoveToSAN_PawnPush(t *testing.T) {
	pos := position.StartingPosition()
	m := findMove(t, &pos, "e2", "e4")
	assert.Equal(t, "e4", MoveToSAN(&pos, m))
}

func TestMoveToSAN_KnightDevelopment(t *testing.T) {
	pos := position.StartingPosition()
	m := findMove(t, &pos, "g1", "f3")
	assert.Equal(t, "Nf3", MoveToSAN(&pos, m))
}

func TestMoveToSAN_Capture(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, &pos, "d4", "e5")
	assert.Equal(t, "dxe5", MoveToSAN(&pos, m))
}

func TestMoveToSAN_Checkmate(t *testing.T) {
	pos, err := position.ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, &pos, "e1", "e8")
	assert.Equal(t, "Re8#", MoveToSAN(&pos, m))
}

func TestMoveToSAN_DisambiguatesByFile(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, &pos, "a1", "d1")
	assert.Equal(t, "Rad1", MoveToSAN(&pos, m))
}

func TestParseSAN_RoundTrip(t *testing.T) {
	pos := position.StartingPosition()
	m, ok := ParseSAN(&pos, "Nf3")
	require.True(t, ok)
	assert.Equal(t, findMove(t, &pos, "g1", "f3"), m)
}

func TestParseSAN_Castle(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	m, ok := ParseSAN(&pos, "O-O")
	require.True(t, ok)
	assert.Equal(t, CastleKing, m.Kind)
}

func TestMoveToCoord_Promotion(t *testing.T) {
	pos, err := position.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, &pos, "a7", "a8")
	for _, mv := range movegen.GenerateLegalMoves(&pos) {
		if mv.From == m.From && mv.To == m.To && mv.Promotion == Queen {
			m = mv
			break
		}
	}
	assert.Equal(t, "a7a8q", MoveToCoord(m))
}
