/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

// Board is a mailbox array of 64 optional pieces, indexed by Square.
// An empty square holds NoPiece.
type Board [BoardSquares]Piece

// PieceAt returns the piece on sq (NoPiece if empty or sq is invalid).
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b[sq]
}

// SetPiece places p on sq.
func (b *Board) SetPiece(sq Square, p Piece) {
	b[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b[sq] = NoPiece
}

// KingSquare returns the square holding color's king, or SqNone if no such
// king is present (an ill-formed board).
func (b *Board) KingSquare(color Color) Square {
	for sq := SqA1; sq <= SqH8; sq++ {
		p := b[sq]
		if p.Kind == King && p.Color == color {
			return sq
		}
	}
	return SqNone
}

// CountPieces returns how many pieces of (kind, color) are on the board.
func (b *Board) CountPieces(kind PieceKind, color Color) int {
	n := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		p := b[sq]
		if p.Kind == kind && p.Color == color {
			n++
		}
	}
	return n
}
