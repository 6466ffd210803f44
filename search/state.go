/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

// Package search implements iterative-deepening alpha-beta search with
// quiescence, transposition-table lookup, and killer/history move
// ordering, run synchronously to completion or until a time budget
// expires.
package search

import (
	"time"

	"github.com/kopp-chess/chessgo/logging"
	"github.com/kopp-chess/chessgo/transpositiontable"
	. "github.com/kopp-chess/chessgo/types"
)

var log = logging.GetLog("search")

// maxKillerPlies bounds the killer table; deeper plies share no killers.
const maxKillerPlies = 64

// historyHalveThreshold triggers a halving pass across the whole history
// table once any entry exceeds it, keeping scores bounded.
const historyHalveThreshold = 10_000

// nodeCheckInterval is how often (in visited nodes) the time budget is
// checked.
const nodeCheckInterval = 1024

// State is the data the search driver owns across one or more searches:
// the transposition table and history table persist across calls;
// nodes/clock/should-stop and the killer table reset at the start of each
// Search call.
type State struct {
	TT *transpositiontable.Table

	Killers [maxKillerPlies][2]Move
	History [2][6][64]uint32

	Nodes      int64
	StartTime  time.Time
	TimeBudget time.Duration
	ShouldStop bool
}

// NewState creates a State with its own transposition table of the given
// megabyte capacity. Killer and history tables start empty.
func NewState(ttSizeMB int) *State {
	return &State{TT: transpositiontable.NewTable(ttSizeMB)}
}

// resetForSearch clears per-call state (nodes, clock, killers) ahead of a
// new Search invocation. It does NOT touch the TT or the history table,
// both of which persist across calls by design.
func (st *State) resetForSearch(budget time.Duration) {
	st.Nodes = 0
	st.StartTime = time.Now()
	st.TimeBudget = budget
	st.ShouldStop = false
	st.Killers = [maxKillerPlies][2]Move{}
}

// checkTime probes the wall clock every nodeCheckInterval nodes and sets
// ShouldStop once the time budget has been exceeded.
func (st *State) checkTime() {
	if st.ShouldStop {
		return
	}
	if st.Nodes%nodeCheckInterval != 0 {
		return
	}
	if st.TimeBudget > 0 && time.Since(st.StartTime) >= st.TimeBudget {
		st.ShouldStop = true
	}
}

func historyPieceIndex(kind PieceKind) int {
	return int(kind) - 1
}

func colorIndex(c Color) int {
	if c == Black {
		return 1
	}
	return 0
}

func (st *State) historyOf(m Move) uint32 {
	return st.History[colorIndex(m.Piece.Color)][historyPieceIndex(m.Piece.Kind)][m.To]
}

// addHistory rewards a quiet move that produced a beta cutoff, halving the
// whole table if any entry would overflow historyHalveThreshold.
func (st *State) addHistory(m Move, depth int) {
	ci, pi := colorIndex(m.Piece.Color), historyPieceIndex(m.Piece.Kind)
	st.History[ci][pi][m.To] += uint32(depth * depth)
	if st.History[ci][pi][m.To] > historyHalveThreshold {
		st.halveHistory()
	}
}

func (st *State) halveHistory() {
	for c := range st.History {
		for k := range st.History[c] {
			for sq := range st.History[c][k] {
				st.History[c][k][sq] /= 2
			}
		}
	}
}

// addKiller records a quiet move as a killer at ply, inserting it at slot
// 0 and shifting the previous slot-0 entry down. A move already present at
// this ply is not duplicated.
func (st *State) addKiller(ply int, m Move) {
	if ply >= maxKillerPlies {
		return
	}
	if st.Killers[ply][0].Equal(m) || st.Killers[ply][1].Equal(m) {
		return
	}
	st.Killers[ply][1] = st.Killers[ply][0]
	st.Killers[ply][0] = m
}
