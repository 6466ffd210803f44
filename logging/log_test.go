/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLog_ReturnsSameInstanceForSameName(t *testing.T) {
	a := GetLog("widget")
	b := GetLog("widget")
	assert.Same(t, a, b)
}

func TestGetLog_DistinctNamesGetDistinctLoggers(t *testing.T) {
	a := GetLog("widget-a")
	b := GetLog("widget-b")
	assert.NotSame(t, a, b)
}
