/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

// Value is a centipawn evaluation score, always from White's point of view
// unless documented otherwise (search works in side-to-move-relative scores
// internally and flips sign at the root).
type Value int32

// Score constants shared by evaluation and search.
const (
	// DrawScore is returned for a drawn position.
	DrawScore Value = 0
	// MateScore is the magnitude assigned to a checkmate; search subtracts
	// ply from it so faster mates score higher.
	MateScore Value = 100_000
	// MateThreshold is the value above which a score is considered "found
	// a forced mate" (mirrors spec.md's "|score| >= MateScore-100").
	MateThreshold Value = MateScore - 100
	// Infinity is used as the initial alpha/beta window bound.
	Infinity Value = MateScore + 1
)

// IsMateScore reports whether v represents a forced mate (for either side).
func (v Value) IsMateScore() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= MateThreshold
}
