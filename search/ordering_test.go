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

	. "github.com/kopp-chess/chessgo/types"
)

func TestMvvLva_WinningCaptureOutscoresLosingCapture(t *testing.T) {
	winning := mvvLva(Queen, Pawn)
	losing := mvvLva(Pawn, Queen)
	assert.Greater(t, winning, losing)
}

func TestMoveScore_HashMoveOutranksEverything(t *testing.T) {
	st := NewState(1)
	hashMove := Move{From: SqE2, To: SqE4, Piece: Piece{Kind: Pawn, Color: White}}
	capture := Move{From: SqD2, To: SqD4, Piece: Piece{Kind: Pawn, Color: White}, Kind: Capture, Captured: Piece{Kind: Queen, Color: Black}}
	assert.Greater(t, st.moveScore(hashMove, hashMove, 0), st.moveScore(capture, hashMove, 0))
}

func TestMoveScore_KillerOutranksHistory(t *testing.T) {
	st := NewState(1)
	killer := Move{From: SqE2, To: SqE4, Piece: Piece{Kind: Pawn, Color: White}}
	quiet := Move{From: SqD2, To: SqD4, Piece: Piece{Kind: Pawn, Color: White}}
	st.addKiller(3, killer)
	assert.Greater(t, st.moveScore(killer, NoMove, 3), st.moveScore(quiet, NoMove, 3))
}

func TestOrderMoves_SortsDescending(t *testing.T) {
	st := NewState(1)
	quiet := Move{From: SqD2, To: SqD4, Piece: Piece{Kind: Pawn, Color: White}}
	capture := Move{From: SqE2, To: SqE4, Piece: Piece{Kind: Pawn, Color: White}, Kind: Capture, Captured: Piece{Kind: Queen, Color: Black}}
	moves := []Move{quiet, capture}
	st.orderMoves(moves, NoMove, 0)
	assert.Equal(t, capture, moves[0])
}
