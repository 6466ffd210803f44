/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

import "fmt"

// Square is a board square in [0, 64), rank-major: index = rank*8 + file,
// file in [0,7] (a..h), rank in [0,7] (rank 1 = 0 .. rank 8 = 7).
type Square int8

// SqNone marks the absence of a square (e.g. no en-passant target).
const SqNone Square = -1

// Square constants for the named squares, generated in file-then-rank order.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// BoardSquares is the total number of squares on a chess board.
const BoardSquares = 64

// File is a board file in [0,7], a=0..h=7.
func File(sq Square) int { return int(sq) & 7 }

// Rank is a board rank in [0,7], rank 1 = 0 .. rank 8 = 7.
func Rank(sq Square) int { return int(sq) >> 3 }

// IsOnBoard reports whether the given file/rank pair lies on the board.
func IsOnBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// MakeSq builds a Square from a file/rank pair, or SqNone if out of range.
func MakeSq(file, rank int) Square {
	if !IsOnBoard(file, rank) {
		return SqNone
	}
	return Square(rank*8 + file)
}

// IsValid reports whether sq is a real board square.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// FileLetter returns the file as a lowercase letter, "a".."h".
func (sq Square) FileLetter() string {
	return string(rune('a' + File(sq)))
}

// RankDigit returns the rank as a digit character, "1".."8".
func (sq Square) RankDigit() string {
	return string(rune('1' + Rank(sq)))
}

// String returns the algebraic name of sq, e.g. "e4", or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileLetter() + sq.RankDigit()
}

// ParseSquare reads a two-character algebraic square ("e4") and returns
// SqNone if the string is not a valid square.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if !IsOnBoard(file, rank) {
		return SqNone
	}
	return MakeSq(file, rank)
}

// To returns the square reached by stepping one square in direction d from
// sq, or SqNone if that step would wrap around a board edge or fall off
// the board.
func (sq Square) To(d Direction) Square {
	f, r := File(sq), Rank(sq)
	switch d {
	case North:
		r++
	case South:
		r--
	case East:
		f++
	case West:
		f--
	case Northeast:
		f++
		r++
	case Northwest:
		f--
		r++
	case Southeast:
		f++
		r--
	case Southwest:
		f--
		r--
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	return MakeSq(f, r)
}

// KnightStep returns the square reached from sq by the given knight offset
// (one of the deltas in KnightOffsets), or SqNone if it would wrap or leave the
// board. Validated via file/rank delta rather than raw index arithmetic
// so wrap-around never produces a false target.
func (sq Square) KnightStep(offset int) Square {
	target := int(sq) + offset
	if target < 0 || target >= BoardSquares {
		return SqNone
	}
	f0, r0 := File(sq), Rank(sq)
	f1, r1 := File(Square(target)), Rank(Square(target))
	df, dr := abs(f1-f0), abs(r1-r0)
	if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
		return Square(target)
	}
	return SqNone
}

// KingStep returns the square reached from sq by the given king offset
// (one of the deltas in KingOffsets), or SqNone on wrap/off-board.
func (sq Square) KingStep(offset int) Square {
	target := int(sq) + offset
	if target < 0 || target >= BoardSquares {
		return SqNone
	}
	f0, r0 := File(sq), Rank(sq)
	f1, r1 := File(Square(target)), Rank(Square(target))
	if abs(f1-f0) > 1 || abs(r1-r0) > 1 {
		return SqNone
	}
	return Square(target)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MirrorVertical returns the square mirrored across the board's
// horizontal midline: (7-rank)*8 + file. Used to look up White-oriented
// piece-square tables for Black.
func (sq Square) MirrorVertical() Square {
	return MakeSq(File(sq), 7-Rank(sq))
}
