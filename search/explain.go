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
	"fmt"
	"math"

	. "github.com/kopp-chess/chessgo/types"
)

func sideOf(v Value) string {
	if v >= 0 {
		return "White"
	}
	return "Black"
}

func abs(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// explain builds the human-readable explanation lines for a Result, keyed
// off the overall evaluation, the component breakdown, and the chosen move.
func explain(r Result) []string {
	var lines []string

	if r.Evaluation.IsMateScore() {
		movesToMate := int(math.Ceil(float64(MateScore-abs(r.Evaluation)) / 2))
		lines = append(lines, fmt.Sprintf("Checkmate for %s in %d moves", sideOf(r.Evaluation), movesToMate))
	} else {
		switch {
		case r.Evaluation > 200:
			lines = append(lines, "White has a winning advantage")
		case r.Evaluation > 50:
			lines = append(lines, "White has a slight advantage")
		case r.Evaluation < -200:
			lines = append(lines, "Black has a winning advantage")
		case r.Evaluation < -50:
			lines = append(lines, "Black has a slight advantage")
		default:
			lines = append(lines, "Position is roughly equal")
		}
	}

	b := r.Breakdown
	if abs(b.Material) > 100 {
		pawns := math.Abs(float64(b.Material) / 100)
		lines = append(lines, fmt.Sprintf("%s is up %.1f pawns worth of material", sideOf(b.Material), pawns))
	}
	if abs(b.KingSafety) > 30 {
		lines = append(lines, sideOf(b.KingSafety)+" has better king safety")
	}
	if abs(b.CenterControl) > 20 {
		lines = append(lines, sideOf(b.CenterControl)+" controls the center")
	}
	if abs(b.Mobility) > 30 {
		lines = append(lines, sideOf(b.Mobility)+" has better piece mobility")
	}

	if !r.BestMove.IsNone() {
		switch {
		case r.BestMove.Kind.IsCapture():
			lines = append(lines, "Captures "+r.BestMove.Captured.Kind.String())
		case r.BestMove.Kind.IsPromotion():
			lines = append(lines, "Promotes pawn to "+r.BestMove.Promotion.String())
		case r.BestMove.Kind.IsCastle():
			lines = append(lines, "Castles for king safety")
		}
	}

	return lines
}
