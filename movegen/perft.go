/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package movegen

import (
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// PerftResult tallies the leaf-node statistics a perft walk collects: the
// total node count plus counters for interesting move classes, grounded on
// FrankyGo's movegen.Perft struct fields.
type PerftResult struct {
	Nodes            uint64
	Captures         uint64
	EnPassant        uint64
	Castles          uint64
	Promotions       uint64
	Checks           uint64
	Checkmates       uint64
}

// Perft walks the legal move tree rooted at pos to the given depth and
// returns leaf-node counts, used to validate move generation against the
// published perft tables.
func Perft(pos position.Position, depth int) PerftResult {
	var result PerftResult
	perftRec(pos, depth, &result)
	return result
}

func perftRec(pos position.Position, depth int, result *PerftResult) {
	if depth == 0 {
		result.Nodes++
		return
	}
	moves := GenerateLegalMoves(&pos)
	if depth == 1 {
		for _, mv := range moves {
			result.Nodes++
			if mv.Kind.IsCapture() {
				result.Captures++
			}
			if mv.Kind == EnPassant {
				result.EnPassant++
			}
			if mv.Kind.IsCastle() {
				result.Castles++
			}
			if mv.Kind.IsPromotion() {
				result.Promotions++
			}
			next := position.MakeMove(pos, mv)
			if IsInCheck(&next.Board, next.SideToMove) {
				result.Checks++
				if len(GenerateLegalMoves(&next)) == 0 {
					result.Checkmates++
				}
			}
		}
		return
	}
	for _, mv := range moves {
		next := position.MakeMove(pos, mv)
		perftRec(next, depth-1, result)
	}
}
