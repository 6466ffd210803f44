/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package notation

import (
	"strings"

	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// MoveToSAN renders mv (played from pos) in Standard Algebraic Notation,
// including the "+"/"#" suffix for the position mv produces.
func MoveToSAN(pos *position.Position, mv Move) string {
	if mv.Kind.IsCastle() {
		san := "O-O"
		if mv.Kind == CastleQueen {
			san = "O-O-O"
		}
		return san + checkSuffix(pos, mv)
	}

	var b strings.Builder

	if mv.Piece.Kind != Pawn {
		b.WriteString(mv.Piece.Kind.String())
		b.WriteString(disambiguate(pos, mv))
	}

	if mv.Kind.IsCapture() {
		if mv.Piece.Kind == Pawn {
			b.WriteString(mv.From.FileLetter())
		}
		b.WriteString("x")
	}

	b.WriteString(mv.To.String())

	if mv.Kind.IsPromotion() {
		b.WriteString("=")
		b.WriteString(mv.Promotion.String())
	}

	b.WriteString(checkSuffix(pos, mv))
	return b.String()
}

// checkSuffix makes mv and reports "#" for checkmate, "+" for check, ""
// otherwise.
func checkSuffix(pos *position.Position, mv Move) string {
	next := position.MakeMove(*pos, mv)
	switch {
	case movegen.IsCheckmate(&next):
		return "#"
	case movegen.IsInCheck(&next.Board, next.SideToMove):
		return "+"
	default:
		return ""
	}
}

// disambiguate returns the minimal from-square prefix ("", file, rank, or
// both) needed to distinguish mv from other legal moves of the same piece
// kind landing on the same square.
func disambiguate(pos *position.Position, mv Move) string {
	var sameFile, sameRank bool
	ambiguous := false

	for _, other := range movegen.GenerateLegalMoves(pos) {
		if other.To != mv.To || other.Piece.Kind != mv.Piece.Kind || other.From == mv.From {
			continue
		}
		ambiguous = true
		if File(other.From) == File(mv.From) {
			sameFile = true
		}
		if Rank(other.From) == Rank(mv.From) {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	if !sameFile {
		return mv.From.FileLetter()
	}
	if !sameRank {
		return mv.From.RankDigit()
	}
	return mv.From.String()
}

// ParseSAN resolves a SAN string against the legal moves available at pos.
func ParseSAN(pos *position.Position, s string) (Move, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	if s == "O-O" || s == "0-0" {
		return findCastle(pos, CastleKing)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return findCastle(pos, CastleQueen)
	}

	promotion := PtNone
	if idx := strings.Index(s, "="); idx >= 0 {
		promotion, _ = PieceKindFromLetter(s[idx+1:])
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pieceKind := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		var ok bool
		pieceKind, ok = PieceKindFromLetter(s[:1])
		if !ok {
			return NoMove, false
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, false
	}
	dest := ParseSquare(s[len(s)-2:])
	if dest == SqNone {
		return NoMove, false
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.To != dest || m.Piece.Kind != pieceKind {
			continue
		}
		if isCapture != m.Kind.IsCapture() {
			continue
		}
		if promotion != PtNone && m.Promotion != promotion {
			continue
		}
		if disambigFile >= 0 && File(m.From) != disambigFile {
			continue
		}
		if disambigRank >= 0 && Rank(m.From) != disambigRank {
			continue
		}
		return m, true
	}
	return NoMove, false
}

func findCastle(pos *position.Position, kind MoveKind) (Move, bool) {
	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.Kind == kind {
			return m, true
		}
	}
	return NoMove, false
}
