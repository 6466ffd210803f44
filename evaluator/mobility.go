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
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// mobilityWeight scales the legal-move-count differential into centipawns.
const mobilityWeight = 5

// Mobility returns White's legal-move count minus Black's, scaled by
// mobilityWeight. ownMoveCount is the caller's already-computed legal move
// count for pos.SideToMove, so the root Evaluate call need not generate
// that side's moves twice.
func Mobility(pos *position.Position, ownMoveCount int) Value {
	opp := *pos
	opp.SideToMove = pos.SideToMove.Flip()
	theirs := len(movegen.GenerateLegalMoves(&opp))

	diff := Value((ownMoveCount - theirs) * mobilityWeight)
	if pos.SideToMove == Black {
		diff = -diff
	}
	return diff
}
