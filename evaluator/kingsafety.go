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
	castledBonus      Value = 30
	uncastledPenalty  Value = -20
	attackedNeighbour Value = -10
)

// kingSafetyFor scores one color's king safety: a bonus for having tucked
// the king away on the wing, a penalty for sitting on its home square's
// center files, and a penalty per enemy-attacked square in its immediate
// neighbourhood.
func kingSafetyFor(board *Board, color Color) Value {
	kingSq := board.KingSquare(color)
	if kingSq == SqNone {
		return 0
	}

	homeRank := 0
	if color == Black {
		homeRank = 7
	}

	var score Value
	if Rank(kingSq) == homeRank {
		file := File(kingSq)
		switch {
		case file <= 1 || file >= 6:
			score += castledBonus
		case file == 3 || file == 4:
			score += uncastledPenalty
		}
	}

	enemy := color.Flip()
	kf, kr := File(kingSq), Rank(kingSq)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := kf+df, kr+dr
			if !IsOnBoard(f, r) {
				continue
			}
			sq := MakeSq(f, r)
			if movegen.IsSquareAttacked(board, sq, enemy) {
				score += attackedNeighbour
			}
		}
	}
	return score
}

// KingSafety returns White's king-safety score minus Black's.
func KingSafety(board *Board) Value {
	return kingSafetyFor(board, White) - kingSafetyFor(board, Black)
}
