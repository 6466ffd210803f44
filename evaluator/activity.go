/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package evaluator

import (
	. "github.com/kopp-chess/chessgo/types"
)

const (
	bishopPairBonus Value = 30
	openFileBonus   Value = 20
)

func fileHasPawn(board *Board, file int) bool {
	for rank := 0; rank < 8; rank++ {
		p := board.PieceAt(MakeSq(file, rank))
		if p.Kind == Pawn {
			return true
		}
	}
	return false
}

func activityFor(board *Board, color Color) Value {
	var score Value
	if board.CountPieces(Bishop, color) >= 2 {
		score += bishopPairBonus
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		p := board.PieceAt(sq)
		if p.Kind != Rook || p.Color != color {
			continue
		}
		if !fileHasPawn(board, File(sq)) {
			score += openFileBonus
		}
	}
	return score
}

// PieceActivity returns White's piece-activity score minus Black's: a
// bonus for holding the bishop pair, plus a bonus per rook on a file with
// no pawns of either color.
func PieceActivity(board *Board) Value {
	return activityFor(board, White) - activityFor(board, Black)
}
