/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopp-chess/chessgo/position"
)

func TestParseCoord_MatchesLegalMove(t *testing.T) {
	pos := position.StartingPosition()
	m, ok := ParseCoord(&pos, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, "e2e4", MoveToCoord(m))
}

func TestParseCoord_RejectsIllegalMove(t *testing.T) {
	pos := position.StartingPosition()
	_, ok := ParseCoord(&pos, "e2e5")
	assert.False(t, ok)
}
