/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

import "strings"

// MoveKind tags the special handling a Move requires beyond "piece walks
// from From to To".
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	CastleKing
	CastleQueen
	Promotion
	PromotionCapture
)

// IsCapture reports whether the move kind removes an enemy piece.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || k == PromotionCapture
}

// IsCastle reports whether the move kind is one of the two castling moves.
func (k MoveKind) IsCastle() bool {
	return k == CastleKing || k == CastleQueen
}

// IsPromotion reports whether the move kind promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	return k == Promotion || k == PromotionCapture
}

// Move is a fully self-described chess move: it carries the moving piece,
// the captured piece (if any) and the promotion kind (if any), so that
// MakeMove and SAN rendering never need to re-probe the board it came from.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Kind      MoveKind
	Captured  Piece // valid iff Kind.IsCapture()
	Promotion PieceKind // valid iff Kind.IsPromotion(); one of Knight,Bishop,Rook,Queen
}

// IsQuiet reports whether the move is neither a capture nor a promotion -
// the class of moves eligible for killer-move and history-heuristic storage.
func (m Move) IsQuiet() bool {
	return !m.Kind.IsCapture() && !m.Kind.IsPromotion()
}

// Coord returns the coordinate notation for m: "from"+"to"+optional
// lowercase promotion letter, e.g. "e2e4" or "a7a8q".
func (m Move) Coord() string {
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Kind.IsPromotion() {
		b.WriteString(strings.ToLower(m.Promotion.String()))
	}
	return b.String()
}

// Equal reports whether two moves share the same from/to/promotion - the
// comparison used to match killer-table entries against generated moves.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// NoMove is the sentinel meaning "no move".
var NoMove = Move{From: SqNone, To: SqNone}

// IsNone reports whether m is the NoMove sentinel or the zero Move (From
// and To both a1), so an unfilled slot such as a cleared killer entry also
// reads as "no move".
func (m Move) IsNone() bool {
	return m.From == SqNone || m.To == SqNone || m.From == m.To
}
