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
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// relativeEval returns evaluator.Evaluate(pos), flipped to be relative to
// the side to move rather than always White's point of view.
func relativeEval(pos *position.Position) Value {
	v := evaluator.Evaluate(pos)
	if pos.SideToMove == Black {
		return -v
	}
	return v
}

// Quiesce resolves tactical noise at a leaf by continuing to search
// captures only, until the position is "quiet" (no capture improves on
// the stand-pat evaluation).
func (st *State) Quiesce(pos *position.Position, alpha, beta Value) Value {
	st.Nodes++
	st.checkTime()
	if st.ShouldStop {
		return 0
	}

	standPat := relativeEval(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.GenerateLegalMoves(pos)
	captures := moves[:0:0]
	for _, m := range moves {
		if m.Kind.IsCapture() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return mvvLva(captures[i].Captured.Kind, captures[i].Piece.Kind) >
			mvvLva(captures[j].Captured.Kind, captures[j].Piece.Kind)
	})

	for _, m := range captures {
		next := position.MakeMove(*pos, m)
		score := -st.Quiesce(&next, -beta, -alpha)
		if st.ShouldStop {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
