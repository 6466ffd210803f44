/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package search

import (
	"sort"

	"github.com/kopp-chess/chessgo/evaluator"
	. "github.com/kopp-chess/chessgo/types"
)

const (
	hashMoveScore   = 1_000_000
	promotionBase   = 80_000
	winningCapture  = 100_000
	equalCapture    = 50_000
	losingCapture   = 30_000
	killerSlot0     = 40_000
	killerSlot1     = 39_000
	historyMax      = 38_999
	historyOverflow = 10_000
)

var victimRank = map[PieceKind]int{
	Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6,
}

var attackerRank = map[PieceKind]int{
	King: 1, Queen: 2, Rook: 3, Bishop: 4, Knight: 5, Pawn: 6,
}

func mvvLva(victim, attacker PieceKind) int {
	return 10*victimRank[victim] + attackerRank[attacker]
}

func promotionValue(kind PieceKind) int {
	switch kind {
	case Queen:
		return int(evaluator.QueenValue)
	case Rook:
		return int(evaluator.RookValue)
	case Bishop:
		return int(evaluator.BishopValue)
	case Knight:
		return int(evaluator.KnightValue)
	default:
		return 0
	}
}

func pieceValue(kind PieceKind) int {
	switch kind {
	case Pawn:
		return int(evaluator.PawnValue)
	case Knight:
		return int(evaluator.KnightValue)
	case Bishop:
		return int(evaluator.BishopValue)
	case Rook:
		return int(evaluator.RookValue)
	case Queen:
		return int(evaluator.QueenValue)
	case King:
		return int(evaluator.KingValue)
	default:
		return 0
	}
}

// moveScore ranks m for ordering at the given ply, given the TT's
// preferred move (if any) and the engine's killer/history tables.
func (st *State) moveScore(m Move, hashMove Move, ply int) int {
	if !hashMove.IsNone() && m.From == hashMove.From && m.To == hashMove.To {
		return hashMoveScore
	}
	if m.Kind.IsPromotion() {
		return promotionBase + promotionValue(m.Promotion)
	}
	if m.Kind.IsCapture() {
		victim, attacker := pieceValue(m.Captured.Kind), pieceValue(m.Piece.Kind)
		score := mvvLva(m.Captured.Kind, m.Piece.Kind)
		switch {
		case victim > attacker:
			return winningCapture + score
		case victim == attacker:
			return equalCapture + score
		default:
			return losingCapture + score
		}
	}
	if ply < len(st.Killers) {
		if st.Killers[ply][0].Equal(m) {
			return killerSlot0
		}
		if st.Killers[ply][1].Equal(m) {
			return killerSlot1
		}
	}
	h := int(st.historyOf(m))
	if h > historyMax {
		h = historyMax
	}
	return h
}

// orderMoves sorts moves descending by moveScore, in place.
func (st *State) orderMoves(moves []Move, hashMove Move, ply int) {
	sort.SliceStable(moves, func(i, j int) bool {
		return st.moveScore(moves[i], hashMove, ply) > st.moveScore(moves[j], hashMove, ply)
	})
}
