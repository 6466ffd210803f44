/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package evaluator

import (
	. "github.com/kopp-chess/chessgo/types"
)

const (
	doubledPawnPenalty  Value = -20
	isolatedPawnPenalty Value = -15
)

func pawnsPerFile(board *Board, color Color) [8]int {
	var files [8]int
	for sq := SqA1; sq <= SqH8; sq++ {
		p := board.PieceAt(sq)
		if p.Kind == Pawn && p.Color == color {
			files[File(sq)]++
		}
	}
	return files
}

func pawnStructureFor(board *Board, color Color) Value {
	files := pawnsPerFile(board, color)
	var score Value
	for f := 0; f < 8; f++ {
		n := files[f]
		if n == 0 {
			continue
		}
		if n > 1 {
			score += doubledPawnPenalty * Value(n-1)
		}
		leftEmpty := f == 0 || files[f-1] == 0
		rightEmpty := f == 7 || files[f+1] == 0
		if leftEmpty && rightEmpty {
			score += isolatedPawnPenalty * Value(n)
		}
	}
	return score
}

// PawnStructure returns White's pawn-structure score minus Black's, scoring
// doubled and isolated pawns for each color independently.
func PawnStructure(board *Board) Value {
	return pawnStructureFor(board, White) - pawnStructureFor(board, Black)
}
