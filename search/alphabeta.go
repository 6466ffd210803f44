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
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	"github.com/kopp-chess/chessgo/transpositiontable"
	. "github.com/kopp-chess/chessgo/types"
	"github.com/kopp-chess/chessgo/zobrist"
)

// halfmoveClockDrawLimit is the 50-move rule threshold.
const halfmoveClockDrawLimit = 100

// AlphaBeta searches pos to depth plies using negamax alpha-beta, returning
// the score relative to the side to move at pos and the principal variation
// from pos onward (best move first). It probes and stores into st.TT, and
// records killer/history data for quiet moves that cause a beta cutoff.
func (st *State) AlphaBeta(pos *position.Position, depth, ply int, alpha, beta Value) (Value, []Move) {
	if st.ShouldStop {
		return 0, nil
	}

	key := zobrist.Hash(pos)
	entry, found := st.TT.Probe(key)
	if found && entry.Depth >= depth {
		switch entry.Bound {
		case transpositiontable.BoundExact:
			return entry.Value, nil
		case transpositiontable.BoundLower:
			if entry.Value >= beta {
				return beta, nil
			}
		case transpositiontable.BoundUpper:
			if entry.Value <= alpha {
				return alpha, nil
			}
		}
	}

	if depth <= 0 {
		return st.Quiesce(pos, alpha, beta), nil
	}

	st.Nodes++
	st.checkTime()
	if st.ShouldStop {
		return 0, nil
	}

	moves := movegen.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		if movegen.IsInCheck(&pos.Board, pos.SideToMove) {
			return -MateScore + Value(ply), nil
		}
		return DrawScore, nil
	}

	if pos.HalfmoveClock >= halfmoveClockDrawLimit {
		return DrawScore, nil
	}

	hashMove := NoMove
	if found {
		hashMove = entry.Move
	}
	st.orderMoves(moves, hashMove, ply)

	bestScore := -Infinity
	bestMove := NoMove
	var pv []Move
	nodeType := transpositiontable.BoundUpper

	for _, m := range moves {
		next := position.MakeMove(*pos, m)
		childScore, childPV := st.AlphaBeta(&next, depth-1, ply+1, -beta, -alpha)
		score := -childScore
		if st.ShouldStop {
			return 0, nil
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			nodeType = transpositiontable.BoundExact
			pv = append([]Move{m}, childPV...)
		}
		if alpha >= beta {
			nodeType = transpositiontable.BoundLower
			if m.IsQuiet() {
				st.addKiller(ply, m)
				st.addHistory(m, depth)
			}
			break
		}
	}

	st.TT.Store(key, bestMove, bestScore, depth, nodeType)
	return bestScore, pv
}
