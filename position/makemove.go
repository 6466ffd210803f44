/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package position

import (
	. "github.com/kopp-chess/chessgo/types"
)

// MakeMove returns the successor Position after applying mv to pos. It is
// a total function: callers are expected to only pass moves returned by
// movegen.GenerateLegalMoves for this exact position (spec.md §7), but a
// foreign move is still applied without panicking - the resulting Position
// is simply unspecified.
func MakeMove(pos Position, mv Move) Position {
	next := pos
	next.Board.Clear(mv.From)

	switch mv.Kind {
	case EnPassant:
		captureSq := MakeSq(File(mv.To), Rank(mv.From))
		next.Board.Clear(captureSq)
		next.Board.SetPiece(mv.To, mv.Piece)
	case CastleKing, CastleQueen:
		geo := CastlingGeometryFor(mv.Piece.Color, mv.Kind)
		next.Board.SetPiece(geo.KingTo, mv.Piece)
		next.Board.Clear(geo.RookFrom)
		next.Board.SetPiece(geo.RookTo, Piece{Kind: Rook, Color: mv.Piece.Color})
	case Promotion, PromotionCapture:
		next.Board.SetPiece(mv.To, Piece{Kind: mv.Promotion, Color: mv.Piece.Color})
	default:
		next.Board.SetPiece(mv.To, mv.Piece)
	}

	// En-passant target for the *next* move: only set when a pawn advanced
	// two ranks this move.
	next.EnPassant = SqNone
	if mv.Piece.Kind == Pawn {
		df := Rank(mv.To) - Rank(mv.From)
		if df == 2 || df == -2 {
			next.EnPassant = MakeSq(File(mv.From), (Rank(mv.From)+Rank(mv.To))/2)
		}
	}

	updateCastlingRights(&next.Castling, mv)

	if mv.Piece.Kind == Pawn || mv.Kind.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if mv.Piece.Color == Black {
		next.FullmoveNumber++
	}

	next.SideToMove = pos.SideToMove.Flip()
	return next
}

func updateCastlingRights(cr *CastlingRights, mv Move) {
	if mv.Piece.Kind == King {
		cr.ClearColor(mv.Piece.Color)
	}
	clearIfRookCorner(cr, mv.From)
	clearIfRookCorner(cr, mv.To)
}

func clearIfRookCorner(cr *CastlingRights, sq Square) {
	switch sq {
	case SqA1:
		cr.WhiteQueen = false
	case SqH1:
		cr.WhiteKing = false
	case SqA8:
		cr.BlackQueen = false
	case SqH8:
		cr.BlackKing = false
	}
}
