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
	"time"

	"github.com/kopp-chess/chessgo/evaluator"
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// signedToWhite converts a side-to-move-relative score into White's POV.
func signedToWhite(score Value, stm Color) Value {
	if stm == Black {
		return -score
	}
	return score
}

// Search runs iterative deepening from depth 1 up to opts.MaxDepth, or until
// opts.MaxTimeMs elapses, and returns the best move found together with its
// evaluation, principal variation and a human-readable explanation.
func (st *State) Search(pos *position.Position, opts Options) Result {
	budget := time.Duration(opts.MaxTimeMs) * time.Millisecond
	st.resetForSearch(budget)

	var (
		bestMove       = NoMove
		bestPV         []Move
		completedDepth int
		evaluation     Value
	)

	maxDepth := opts.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	for d := 1; d <= maxDepth; d++ {
		score, pv := st.AlphaBeta(pos, d, 0, -Infinity, Infinity)
		if st.ShouldStop && d > 1 {
			break
		}
		if len(pv) > 0 {
			bestMove = pv[0]
			bestPV = pv
			completedDepth = d
			evaluation = signedToWhite(score, pos.SideToMove)
		}
		if score.IsMateScore() {
			break
		}
		if st.ShouldStop {
			break
		}
	}

	if bestMove.IsNone() {
		legal := movegen.GenerateLegalMoves(pos)
		if len(legal) > 0 {
			bestMove = legal[0]
		}
		evaluation = evaluator.Evaluate(pos)
		completedDepth = 0
		bestPV = nil
	}

	r := Result{
		BestMove:           bestMove,
		Evaluation:         evaluation,
		Breakdown:          evaluator.EvaluateBreakdown(pos),
		PrincipalVariation: bestPV,
		Depth:              completedDepth,
		NodesSearched:      st.Nodes,
		ElapsedMs:          time.Since(st.StartTime).Milliseconds(),
	}
	r.Explanation = explain(r)
	return r
}
