/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

// Package movegen enumerates pseudo-legal and legal moves for a position,
// and answers attacked-square / check queries used throughout search and
// evaluation.
package movegen

import (
	. "github.com/kopp-chess/chessgo/types"
)

// IsSquareAttacked reports whether sq is attacked by any piece of byColor
// on board. Checked in order: pawns, knights, king, then sliding pieces
// along the four orthogonal and four diagonal rays.
func IsSquareAttacked(board *Board, sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}

	// Pawn attacks: a pawn of byColor attacks sq if it sits one of the two
	// squares diagonally "behind" sq relative to its own advance direction.
	var pawnFrom [2]Square
	if byColor == White {
		pawnFrom = [2]Square{sq.To(Southwest), sq.To(Southeast)}
	} else {
		pawnFrom = [2]Square{sq.To(Northwest), sq.To(Northeast)}
	}
	for _, from := range pawnFrom {
		if from == SqNone {
			continue
		}
		p := board.PieceAt(from)
		if p.Kind == Pawn && p.Color == byColor {
			return true
		}
	}

	// Knight attacks are symmetric: walking the same offsets from sq finds
	// every square a knight could attack sq from.
	for _, off := range KnightOffsets {
		from := sq.KnightStep(off)
		if from == SqNone {
			continue
		}
		p := board.PieceAt(from)
		if p.Kind == Knight && p.Color == byColor {
			return true
		}
	}

	// King attacks, same symmetry argument.
	for _, off := range KingOffsets {
		from := sq.KingStep(off)
		if from == SqNone {
			continue
		}
		p := board.PieceAt(from)
		if p.Kind == King && p.Color == byColor {
			return true
		}
	}

	// Sliding attacks: walk each ray until we fall off the board or hit a
	// blocker. A blocker of byColor whose kind matches the ray's geometry
	// means sq is attacked; any other blocker stops the ray without an
	// attack.
	for _, d := range OrthogonalDirections {
		if rayAttacks(board, sq, d, byColor, Rook) {
			return true
		}
	}
	for _, d := range DiagonalDirections {
		if rayAttacks(board, sq, d, byColor, Bishop) {
			return true
		}
	}

	return false
}

func rayAttacks(board *Board, sq Square, d Direction, byColor Color, slider PieceKind) bool {
	cur := sq
	for {
		cur = cur.To(d)
		if cur == SqNone {
			return false
		}
		p := board.PieceAt(cur)
		if p.IsEmpty() {
			continue
		}
		if p.Color == byColor && (p.Kind == slider || p.Kind == Queen) {
			return true
		}
		return false
	}
}

// IsInCheck reports whether color's king is attacked by the opposite color.
func IsInCheck(board *Board, color Color) bool {
	kingSq := board.KingSquare(color)
	if kingSq == SqNone {
		return false
	}
	return IsSquareAttacked(board, kingSq, color.Flip())
}
