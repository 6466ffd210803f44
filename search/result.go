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
	"github.com/kopp-chess/chessgo/evaluator"
	"github.com/kopp-chess/chessgo/logging"
	. "github.com/kopp-chess/chessgo/types"
)

var out = logging.Out

// Result is what Search and the difficulty package's CalculateAIMove hand
// back to a caller: the chosen move plus enough detail to display or to
// drive further difficulty-layer substitution.
type Result struct {
	BestMove           Move
	Evaluation         Value
	Breakdown          evaluator.Breakdown
	PrincipalVariation []Move
	Depth              int
	NodesSearched      int64
	ElapsedMs          int64
	Explanation        []string
}

func (r Result) String() string {
	return out.Sprintf("bestmove=%s eval=%d depth=%d nodes=%d time=%dms",
		r.BestMove.Coord(), r.Evaluation, r.Depth, r.NodesSearched, r.ElapsedMs)
}
