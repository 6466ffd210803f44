/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Flip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestColor_PawnDirection(t *testing.T) {
	assert.Equal(t, 1, White.PawnDirection())
	assert.Equal(t, -1, Black.PawnDirection())
}
