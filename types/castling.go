/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

// CastlingGeometry describes the squares involved in one castling move for
// one color: where the king and rook start and end up, which squares
// between them must be empty, and which squares the king passes through
// (inclusive of its destination) must not be attacked.
type CastlingGeometry struct {
	KingFrom     Square
	KingTo       Square
	RookFrom     Square
	RookTo       Square
	EmptySquares []Square
	KingPath     []Square
}

// CastlingGeometryFor returns the geometry table for color/kind, where kind
// is CastleKing or CastleQueen.
func CastlingGeometryFor(color Color, kind MoveKind) CastlingGeometry {
	if color == White {
		if kind == CastleKing {
			return CastlingGeometry{
				KingFrom: SqE1, KingTo: SqG1,
				RookFrom: SqH1, RookTo: SqF1,
				EmptySquares: []Square{SqF1, SqG1},
				KingPath:     []Square{SqE1, SqF1, SqG1},
			}
		}
		return CastlingGeometry{
			KingFrom: SqE1, KingTo: SqC1,
			RookFrom: SqA1, RookTo: SqD1,
			EmptySquares: []Square{SqB1, SqC1, SqD1},
			KingPath:     []Square{SqE1, SqD1, SqC1},
		}
	}
	if kind == CastleKing {
		return CastlingGeometry{
			KingFrom: SqE8, KingTo: SqG8,
			RookFrom: SqH8, RookTo: SqF8,
			EmptySquares: []Square{SqF8, SqG8},
			KingPath:     []Square{SqE8, SqF8, SqG8},
		}
	}
	return CastlingGeometry{
		KingFrom: SqE8, KingTo: SqC8,
		RookFrom: SqA8, RookTo: SqD8,
		EmptySquares: []Square{SqB8, SqC8, SqD8},
		KingPath:     []Square{SqE8, SqD8, SqC8},
	}
}
