/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package difficulty

import (
	. "github.com/kopp-chess/chessgo/types"
)

// Style biases the mistake-substitution candidate scoring toward a playing
// character; it has no effect on the main search.
type Style int

const (
	Aggressive Style = iota
	Defensive
	Balanced
)

func (s Style) String() string {
	switch s {
	case Aggressive:
		return "Aggressive"
	case Defensive:
		return "Defensive"
	case Balanced:
		return "Balanced"
	default:
		return "Unknown"
	}
}

// Bias holds the per-move bonuses added on top of the one-ply evaluation
// when ranking mistake candidates.
type Bias struct {
	CaptureBonus  Value
	CenterBonus   Value
	ActivityBonus Value
}

var biases = [...]Bias{
	Aggressive: {CaptureBonus: 40, CenterBonus: 10, ActivityBonus: 5},
	Defensive:  {CaptureBonus: 0, CenterBonus: 5, ActivityBonus: 20},
	Balanced:   {CaptureBonus: 15, CenterBonus: 15, ActivityBonus: 15},
}

// BiasFor returns the bonus table for s.
func BiasFor(s Style) Bias {
	return biases[s]
}

// moveBias scores m against bias per spec.md's move-shape rules: a capture
// bonus, a bonus for landing in the extended center (files c-f, ranks 3-6),
// and a bonus for developing a piece off its color's back rank.
func moveBias(m Move, bias Bias) Value {
	var score Value
	if m.Kind.IsCapture() {
		score += bias.CaptureBonus
	}
	if f := File(m.To); f >= 2 && f <= 5 {
		if r := Rank(m.To); r >= 2 && r <= 5 {
			score += bias.CenterBonus
		}
	}
	backRank := 0
	if m.Piece.Color == Black {
		backRank = 7
	}
	if Rank(m.From) == backRank && Rank(m.To) != backRank {
		score += bias.ActivityBonus
	}
	return score
}
