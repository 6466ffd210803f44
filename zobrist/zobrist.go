/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

// Package zobrist computes 64-bit position fingerprints used to key the
// transposition table, following the classic XOR-of-random-constants
// scheme (grounded on FrankyGo's position/zobrist.go struct-of-arrays
// layout, adapted to a fixed deterministic seeded LCG per spec).
package zobrist

import (
	"github.com/kopp-chess/chessgo/position"
	. "github.com/kopp-chess/chessgo/types"
)

// Key is a 64-bit Zobrist position fingerprint.
type Key uint64

// lcg is a fixed, deterministic 64-bit linear congruential generator
// (the constants are the well-known PCG multiplier/increment pair). Using
// a deterministic generator seeded with a fixed constant means the tables
// below - and therefore every Key ever produced - are reproducible across
// runs and builds.
type lcg struct {
	state uint64
}

const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

func (g *lcg) next() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

// pieceIndex maps a piece kind to [0,5] for Pawn..King, independent of
// types.PieceKind's own numbering (which reserves 0 for "no piece").
func pieceIndex(kind PieceKind) int {
	return int(kind) - 1
}

const (
	pieceKinds   = 6
	pieceColors  = 2
	numPieceKeys = pieceKinds * pieceColors
)

var (
	pieceSquareKeys [numPieceKeys][BoardSquares]Key
	castlingKeys    [4]Key
	enPassantFile   [8]Key
	blackToMoveKey  Key
)

func init() {
	g := newLCG(0x9E3779B97F4A7C15)
	for pieceColor := 0; pieceColor < pieceColors; pieceColor++ {
		for kind := 0; kind < pieceKinds; kind++ {
			idx := kind + pieceKinds*pieceColor
			for sq := 0; sq < BoardSquares; sq++ {
				pieceSquareKeys[idx][sq] = Key(g.next())
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = Key(g.next())
	}
	for i := range enPassantFile {
		enPassantFile[i] = Key(g.next())
	}
	blackToMoveKey = Key(g.next())
}

// Hash computes the Zobrist key for pos from scratch: one piece-square
// value per occupied square, the side-to-move value iff Black is to move,
// one value per held castling right, and the en-passant-file value iff an
// en-passant target is set.
func Hash(pos *position.Position) Key {
	var key Key
	for sq := SqA1; sq <= SqH8; sq++ {
		p := pos.Board.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		idx := pieceIndex(p.Kind) + pieceKinds*int(p.Color)
		key ^= pieceSquareKeys[idx][sq]
	}
	if pos.SideToMove == Black {
		key ^= blackToMoveKey
	}
	if pos.Castling.WhiteKing {
		key ^= castlingKeys[0]
	}
	if pos.Castling.WhiteQueen {
		key ^= castlingKeys[1]
	}
	if pos.Castling.BlackKing {
		key ^= castlingKeys[2]
	}
	if pos.Castling.BlackQueen {
		key ^= castlingKeys[3]
	}
	if pos.EnPassant != SqNone {
		key ^= enPassantFile[File(pos.EnPassant)]
	}
	return key
}
