/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

// Package notation renders and parses moves as coordinate strings ("e2e4",
// "a7a8q") and Standard Algebraic Notation ("Nf3", "Rxe8+", "O-O").
package notation

import (
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// MoveToCoord returns m's coordinate notation: "from"+"to"+optional
// lowercase promotion letter.
func MoveToCoord(m Move) string {
	return m.Coord()
}

// ParseCoord resolves a coordinate-notation string against the legal moves
// available at pos, returning (move, true) on a match.
func ParseCoord(pos *position.Position, s string) (Move, bool) {
	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.Coord() == s {
			return m, true
		}
	}
	return NoMove, false
}
