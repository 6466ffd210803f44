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
	"github.com/kopp-chess/chessgo/movegen"
	. "github.com/kopp-chess/chessgo/types"
)

const (
	centerOccupancyBonus   Value = 15
	centerAttackBonus      Value = 5
	extendedCenterBonus    Value = 5
)

var centerSquares = [4]Square{SqD4, SqE4, SqD5, SqE5}

var extendedCenterSquares = [12]Square{
	SqC3, SqD3, SqE3, SqF3,
	SqC4, SqF4,
	SqC5, SqF5,
	SqC6, SqD6, SqE6, SqF6,
}

// CenterControl returns White's center-control score minus Black's: the
// four central squares earn an occupancy bonus for a resident non-king
// piece plus an attack bonus per side that attacks them, and the twelve
// extended-center squares earn a smaller occupancy-only bonus.
func CenterControl(board *Board) Value {
	var score Value

	for _, sq := range centerSquares {
		p := board.PieceAt(sq)
		if !p.IsEmpty() && p.Kind != King {
			if p.Color == White {
				score += centerOccupancyBonus
			} else {
				score -= centerOccupancyBonus
			}
		}
		if movegen.IsSquareAttacked(board, sq, White) {
			score += centerAttackBonus
		}
		if movegen.IsSquareAttacked(board, sq, Black) {
			score -= centerAttackBonus
		}
	}

	for _, sq := range extendedCenterSquares {
		p := board.PieceAt(sq)
		if p.IsEmpty() || p.Kind == King || p.Kind == Pawn {
			continue
		}
		if p.Color == White {
			score += extendedCenterBonus
		} else {
			score -= extendedCenterBonus
		}
	}

	return score
}
