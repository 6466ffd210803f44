/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

// Package position holds the immutable game-state record (Position),
// its FEN codec and the pure make-move transition.
package position

import (
	"strconv"
	"strings"

	myLogging "github.com/kopp-chess/chessgo/logging"
	. "github.com/kopp-chess/chessgo/types"
)

var log = myLogging.GetLog("position")

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete game state needed to generate legal moves.
// Positions are immutable values: MakeMove returns a new Position rather
// than mutating the receiver.
type Position struct {
	Board          Board
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // SqNone if no en-passant capture is available
	HalfmoveClock  uint32
	FullmoveNumber uint32
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	p, err := ParseFEN(StartingFEN)
	if err != nil {
		// StartingFEN is a compile-time constant; a parse failure here is
		// a bug in ParseFEN, not a runtime condition.
		panic(err)
	}
	return p
}

// ParseFEN parses a FEN string into a Position. It requires the first
// four fields (piece placement, side to move, castling rights,
// en-passant target); halfmove clock defaults to 0 and fullmove number
// to 1 when the corresponding fields are absent.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, newParseError(fen, "expected at least 4 space-separated fields, got %d", len(fields))
	}

	var pos Position

	board, err := parsePlacement(fen, fields[0])
	if err != nil {
		return Position{}, err
	}
	pos.Board = board

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, newParseError(fen, "side to move must be 'w' or 'b', got %q", fields[1])
	}

	castling, err := parseCastling(fen, fields[2])
	if err != nil {
		return Position{}, err
	}
	pos.Castling = castling

	ep, err := parseEnPassant(fen, fields[3])
	if err != nil {
		return Position{}, err
	}
	pos.EnPassant = ep

	pos.HalfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.ParseUint(fields[4], 10, 32)
		if err != nil {
			return Position{}, newParseError(fen, "halfmove clock must be numeric, got %q", fields[4])
		}
		pos.HalfmoveClock = uint32(n)
	}

	pos.FullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.ParseUint(fields[5], 10, 32)
		if err != nil {
			return Position{}, newParseError(fen, "fullmove number must be numeric, got %q", fields[5])
		}
		pos.FullmoveNumber = uint32(n)
	}

	if err := validateInvariants(&pos, fen); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// ParseFENSafe parses fen like ParseFEN, but on failure logs a diagnostic
// and returns the starting position instead of an error.
func ParseFENSafe(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		log.Warningf("falling back to starting position: %s", err)
		return StartingPosition()
	}
	return pos
}

// IsValidFEN reports whether fen parses into a well-formed Position.
func IsValidFEN(fen string) bool {
	_, err := ParseFEN(fen)
	return err == nil
}

func parsePlacement(fen, placement string) (Board, error) {
	var board Board
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return board, newParseError(fen, "piece placement must have 8 ranks, got %d", len(ranks))
	}
	// ranks[0] is rank 8 (top), ranks[7] is rank 1 (bottom).
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
				if file > 8 {
					return board, newParseError(fen, "rank %d overflows past the h-file", rank+1)
				}
			default:
				piece, ok := PieceFromFENLetter(r)
				if !ok {
					return board, newParseError(fen, "unknown piece letter %q", string(r))
				}
				if file >= 8 {
					return board, newParseError(fen, "rank %d overflows past the h-file", rank+1)
				}
				board.SetPiece(MakeSq(file, rank), piece)
				file++
			}
		}
		if file != 8 {
			return board, newParseError(fen, "rank %d has %d files, want 8", rank+1, file)
		}
	}
	return board, nil
}

func parseCastling(fen, s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastlingRights, nil
	}
	var cr CastlingRights
	for _, r := range s {
		switch r {
		case 'K':
			cr.WhiteKing = true
		case 'Q':
			cr.WhiteQueen = true
		case 'k':
			cr.BlackKing = true
		case 'q':
			cr.BlackQueen = true
		default:
			return cr, newParseError(fen, "unknown castling rights letter %q", string(r))
		}
	}
	return cr, nil
}

func parseEnPassant(fen, s string) (Square, error) {
	if s == "-" {
		return SqNone, nil
	}
	sq := ParseSquare(s)
	if sq == SqNone {
		return SqNone, newParseError(fen, "malformed en-passant square %q", s)
	}
	return sq, nil
}

// validateInvariants rejects boards that violate spec.md's Position
// invariants: exactly one king of each color (the other invariants -
// pawns never on rank 1/8, castling-rights/king/rook agreement,
// en-passant target plausibility - are upheld by construction via
// MakeMove and are not re-derived here since a hand-authored FEN that
// violates them is merely "ill-formed for play", not unparseable).
func validateInvariants(pos *Position, fen string) error {
	if pos.Board.CountPieces(King, White) != 1 {
		return newParseError(fen, "must have exactly one white king")
	}
	if pos.Board.CountPieces(King, Black) != 1 {
		return newParseError(fen, "must have exactly one black king")
	}
	return nil
}

// String renders pos back to FEN. Round-tripping ParseFEN(pos.String())
// reproduces pos exactly.
func (pos Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.Board.PieceAt(MakeSq(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(pos.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(pos.Castling.String())
	b.WriteByte(' ')
	b.WriteString(pos.EnPassant.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(pos.HalfmoveClock), 10))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(pos.FullmoveNumber), 10))
	return b.String()
}
