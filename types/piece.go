/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND.
 */

package types

import (
	"fmt"
	"strings"
)

// PieceKind enumerates the six kinds of chess piece, independent of color.
type PieceKind uint8

// The six piece kinds. PtNone marks an empty square's kind.
const (
	PtNone PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindLength
)

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceKind) IsValid() bool {
	return pt >= Pawn && pt <= King
}

var pieceKindLetters = [...]string{"", "P", "N", "B", "R", "Q", "K"}

// String returns the uppercase piece letter ("N" for knight etc.), or ""
// for PtNone.
func (pt PieceKind) String() string {
	if int(pt) >= len(pieceKindLetters) {
		panic(fmt.Sprintf("invalid piece kind %d", pt))
	}
	return pieceKindLetters[pt]
}

// PieceKindFromLetter parses a piece letter in either case (N, B, R, Q, K;
// P is accepted too though pawns are rarely spelled out) and reports
// whether it was recognized.
func PieceKindFromLetter(s string) (PieceKind, bool) {
	switch strings.ToUpper(s) {
	case "P":
		return Pawn, true
	case "N":
		return Knight, true
	case "B":
		return Bishop, true
	case "R":
		return Rook, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	default:
		return PtNone, false
	}
}

// Piece is a (kind, color) pair. The zero value is the empty-square marker.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// NoPiece is the empty-square value stored on a Board.
var NoPiece = Piece{Kind: PtNone}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == PtNone
}

// String returns the FEN piece letter: uppercase for White, lowercase for
// Black, "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Kind.String()
	if p.Color == Black {
		s = strings.ToLower(s)
	}
	return s
}

// PieceFromFENLetter decodes one of "KQRBNPkqrbnp" into a Piece. Returns
// false for any other rune.
func PieceFromFENLetter(r rune) (Piece, bool) {
	var color Color
	if r >= 'a' && r <= 'z' {
		color = Black
	} else {
		color = White
	}
	kind, ok := PieceKindFromLetter(string(r))
	if !ok {
		return NoPiece, false
	}
	return Piece{Kind: kind, Color: color}, true
}
