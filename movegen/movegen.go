/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package movegen

import (
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// promotionKinds are the four pieces a pawn may promote to, in the order
// moves are generated for a given destination square.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegal enumerates every move available to the side to move
// on pos, without checking whether the mover's own king ends up in check.
// Move order within the result is unspecified; callers that care about
// ordering should use the search package's move ordering.
func GeneratePseudoLegal(pos *position.Position) []Move {
	moves := make([]Move, 0, 48)
	color := pos.SideToMove
	for sq := SqA1; sq <= SqH8; sq++ {
		p := pos.Board.PieceAt(sq)
		if p.IsEmpty() || p.Color != color {
			continue
		}
		switch p.Kind {
		case Pawn:
			genPawnMoves(pos, sq, p, &moves)
		case Knight:
			genStepMoves(pos, sq, p, KnightOffsets[:], &moves, sq.KnightStep)
		case King:
			genStepMoves(pos, sq, p, KingOffsets[:], &moves, sq.KingStep)
		case Bishop:
			genSliderMoves(pos, sq, p, DiagonalDirections[:], &moves)
		case Rook:
			genSliderMoves(pos, sq, p, OrthogonalDirections[:], &moves)
		case Queen:
			genSliderMoves(pos, sq, p, RayDirections[:], &moves)
		}
	}
	genCastlingMoves(pos, color, &moves)
	return moves
}

func genPawnMoves(pos *position.Position, from Square, p Piece, moves *[]Move) {
	dir := Direction(8 * p.Color.PawnDirection())
	startRank := 1
	promotionRank := 6
	if p.Color == Black {
		startRank = 6
		promotionRank = 1
	}

	one := from.To(dir)
	if one != SqNone && pos.Board.PieceAt(one).IsEmpty() {
		addPawnAdvance(from, one, p, Rank(from) == promotionRank, moves)
		if Rank(from) == startRank {
			two := one.To(dir)
			if two != SqNone && pos.Board.PieceAt(two).IsEmpty() {
				*moves = append(*moves, Move{From: from, To: two, Piece: p, Kind: Normal})
			}
		}
	}

	for _, capDir := range diagonalAheadFor(p.Color) {
		to := from.To(capDir)
		if to == SqNone {
			continue
		}
		if to == pos.EnPassant {
			*moves = append(*moves, Move{
				From: from, To: to, Piece: p, Kind: EnPassant,
				Captured: Piece{Kind: Pawn, Color: p.Color.Flip()},
			})
			continue
		}
		target := pos.Board.PieceAt(to)
		if target.IsEmpty() || target.Color == p.Color {
			continue
		}
		addPawnCapture(from, to, p, target, Rank(from) == promotionRank, moves)
	}
}

func diagonalAheadFor(c Color) []Direction {
	if c == White {
		return []Direction{Northwest, Northeast}
	}
	return []Direction{Southwest, Southeast}
}

func addPawnAdvance(from, to Square, p Piece, isPromotion bool, moves *[]Move) {
	if !isPromotion {
		*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: Normal})
		return
	}
	for _, pk := range promotionKinds {
		*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: Promotion, Promotion: pk})
	}
}

func addPawnCapture(from, to Square, p, target Piece, isPromotion bool, moves *[]Move) {
	if !isPromotion {
		*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: Capture, Captured: target})
		return
	}
	for _, pk := range promotionKinds {
		*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: PromotionCapture, Captured: target, Promotion: pk})
	}
}

func genStepMoves(pos *position.Position, from Square, p Piece, offsets []int, moves *[]Move, step func(int) Square) {
	for _, off := range offsets {
		to := step(off)
		if to == SqNone {
			continue
		}
		target := pos.Board.PieceAt(to)
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: Normal})
		} else if target.Color != p.Color {
			*moves = append(*moves, Move{From: from, To: to, Piece: p, Kind: Capture, Captured: target})
		}
	}
}

func genSliderMoves(pos *position.Position, from Square, p Piece, dirs []Direction, moves *[]Move) {
	for _, d := range dirs {
		cur := from
		for {
			cur = cur.To(d)
			if cur == SqNone {
				break
			}
			target := pos.Board.PieceAt(cur)
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: cur, Piece: p, Kind: Normal})
				continue
			}
			if target.Color != p.Color {
				*moves = append(*moves, Move{From: from, To: cur, Piece: p, Kind: Capture, Captured: target})
			}
			break
		}
	}
}

func genCastlingMoves(pos *position.Position, color Color, moves *[]Move) {
	enemy := color.Flip()
	kingSq := pos.Board.KingSquare(color)
	if kingSq == SqNone || IsSquareAttacked(&pos.Board, kingSq, enemy) {
		return
	}
	tryCastle := func(kind MoveKind, hasRight bool) {
		if !hasRight {
			return
		}
		geo := CastlingGeometryFor(color, kind)
		if kingSq != geo.KingFrom {
			return
		}
		for _, sq := range geo.EmptySquares {
			if !pos.Board.PieceAt(sq).IsEmpty() {
				return
			}
		}
		for _, sq := range geo.KingPath {
			if IsSquareAttacked(&pos.Board, sq, enemy) {
				return
			}
		}
		*moves = append(*moves, Move{From: geo.KingFrom, To: geo.KingTo, Piece: Piece{Kind: King, Color: color}, Kind: kind})
	}
	if color == White {
		tryCastle(CastleKing, pos.Castling.WhiteKing)
		tryCastle(CastleQueen, pos.Castling.WhiteQueen)
	} else {
		tryCastle(CastleKing, pos.Castling.BlackKing)
		tryCastle(CastleQueen, pos.Castling.BlackQueen)
	}
}

// GenerateLegalMoves filters GeneratePseudoLegal by applying each move and
// rejecting it if the mover's own king is left in check.
func GenerateLegalMoves(pos *position.Position) []Move {
	pseudo := GeneratePseudoLegal(pos)
	legal := make([]Move, 0, len(pseudo))
	mover := pos.SideToMove
	for _, mv := range pseudo {
		next := position.MakeMove(*pos, mv)
		if !IsInCheck(&next.Board, mover) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// IsCheckmate reports whether pos has no legal moves while its side to
// move is in check.
func IsCheckmate(pos *position.Position) bool {
	return IsInCheck(&pos.Board, pos.SideToMove) && len(GenerateLegalMoves(pos)) == 0
}

// IsStalemate reports whether pos has no legal moves while its side to
// move is not in check.
func IsStalemate(pos *position.Position) bool {
	return !IsInCheck(&pos.Board, pos.SideToMove) && len(GenerateLegalMoves(pos)) == 0
}
