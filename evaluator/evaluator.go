/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

// Package evaluator scores a position from White's point of view, combining
// material, piece-square placement, mobility, king safety, center control,
// pawn structure and piece activity into a single centipawn value.
package evaluator

import (
	"github.com/kopp-chess/chessgo/config"
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// Breakdown exposes each named evaluation component separately, for
// explanation output and tuning; its Total field always equals what
// Evaluate would return for the same position. Tempo is diagnostic only
// and is not part of Total; it reports the initiative bonus a side-to-move
// aware search would give the side on move, for callers that want it, but
// Evaluate's seven-component sum does not include it.
type Breakdown struct {
	Material      Value
	PieceSquares  Value
	Mobility      Value
	KingSafety    Value
	CenterControl Value
	PawnStructure Value
	PieceActivity Value
	Tempo         Value
	Total         Value
}

// tempo reports the initiative bonus for the side to move, from White's
// point of view. Diagnostic only; see Breakdown.Tempo.
func tempo(stm Color) Value {
	if stm == Black {
		return -Value(config.Settings.Eval.Tempo)
	}
	return Value(config.Settings.Eval.Tempo)
}

// Evaluate scores pos from White's point of view: positive favors White,
// negative favors Black, zero is balanced. It is deterministic; side to
// move affects the mobility term. A side to move with no legal moves is
// scored as checkmate or stalemate rather than by the usual components.
func Evaluate(pos *position.Position) Value {
	return EvaluateBreakdown(pos).Total
}

// EvaluateBreakdown computes the same score as Evaluate while exposing each
// named component, for explanation output and difficulty-layer scoring. All
// component fields are zero on a terminal (checkmate/stalemate) position;
// only Total carries the mate or draw score.
func EvaluateBreakdown(pos *position.Position) Breakdown {
	ownMoves := movegen.GenerateLegalMoves(pos)
	if len(ownMoves) == 0 {
		if movegen.IsInCheck(&pos.Board, pos.SideToMove) {
			if pos.SideToMove == White {
				return Breakdown{Total: -MateScore}
			}
			return Breakdown{Total: MateScore}
		}
		return Breakdown{Total: DrawScore}
	}

	b := Breakdown{
		Material:      Material(&pos.Board),
		PieceSquares:  PieceSquareTables(&pos.Board),
		Mobility:      Mobility(pos, len(ownMoves)),
		KingSafety:    KingSafety(&pos.Board),
		CenterControl: CenterControl(&pos.Board),
		PawnStructure: PawnStructure(&pos.Board),
		PieceActivity: PieceActivity(&pos.Board),
		Tempo:         tempo(pos.SideToMove),
	}
	b.Total = b.Material + b.PieceSquares + b.Mobility + b.KingSafety +
		b.CenterControl + b.PawnStructure + b.PieceActivity
	return b
}
