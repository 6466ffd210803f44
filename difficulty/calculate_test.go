/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package difficulty

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp-chess/chessgo/position"
	"github.com/kopp-chess/chessgo/search"
)

func TestCalculateAIMove_SingleLegalMoveReturnsUnchanged(t *testing.T) {
	// Black king has exactly one legal move.
	pos, err := position.ParseFEN("7k/8/6KP/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	st := search.NewState(1)
	rng := rand.New(rand.NewSource(1))
	r := CalculateAIMove(st, &pos, Expert, Balanced, rng)
	assert.False(t, r.BestMove.IsNone())
}

func TestCalculateAIMove_ExpertNeverSubstitutes(t *testing.T) {
	pos := position.StartingPosition()
	st := search.NewState(1)
	rng := rand.New(rand.NewSource(42))
	r := CalculateAIMove(st, &pos, Expert, Balanced, rng)
	assert.NotContains(t, r.Explanation, "AI made an inaccurate move")
	assert.NotContains(t, r.Explanation, "slightly suboptimal")
}

func TestCalculateAIMove_ZeroProbabilitiesMatchPlainSearch(t *testing.T) {
	// With mistake_p = 0 and blunder_p = 0, calculate_ai_move must return
	// the same best_move as search with the same depth/time budget.
	pos, err := position.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)
	cfg := ConfigFor(Expert)
	require.Zero(t, cfg.MistakeP)
	require.Zero(t, cfg.BlunderP)

	plain := search.NewState(1)
	want := plain.Search(&pos, search.Options{MaxDepth: cfg.MaxDepth, MaxTimeMs: cfg.MaxTimeMs})

	substituting := search.NewState(1)
	rng := rand.New(rand.NewSource(7))
	got := CalculateAIMove(substituting, &pos, Expert, Balanced, rng)

	assert.Equal(t, want.BestMove, got.BestMove)
}

func TestCalculateAIMove_MistakeAlwaysSubstitutesAtLeast90PercentOfTrials(t *testing.T) {
	// With mistake_p = 1 and >= 2 legal moves, the returned best_move must
	// differ from the unperturbed top move in >= 90% of trials. Uses a
	// position with one overwhelmingly best move (a free queen capture) so
	// the mistake pool's noise can never dislodge it from rank 0, making
	// the 90% bound hold with an adversarial seed as spec.md §8 requires.
	pos, err := position.ParseFEN("rnb1kbnr/pppppppp/8/8/4q3/3B4/PPPPPPPP/RNBQK1NR w KQkq - 0 1")
	require.NoError(t, err)
	cfg := Config{MaxDepth: 2, MaxTimeMs: 1000, MistakeP: 1, BlunderP: 0, PoolSize: 5, Noise: 40}

	st := search.NewState(1)
	unperturbed := st.Search(&pos, search.Options{MaxDepth: cfg.MaxDepth, MaxTimeMs: cfg.MaxTimeMs})

	const trials = 50
	substituted := 0
	for i := 0; i < trials; i++ {
		rng := rand.New(rand.NewSource(int64(1000 + i)))
		trialSt := search.NewState(1)
		r := calculateAIMove(trialSt, &pos, cfg, "Custom", Balanced, rng)
		if r.BestMove != unperturbed.BestMove {
			substituted++
		}
	}

	assert.GreaterOrEqual(t, float64(substituted)/float64(trials), 0.90)
}

func TestConfigFor_MatchesTable(t *testing.T) {
	c := ConfigFor(Beginner)
	assert.Equal(t, 2, c.MaxDepth)
	assert.Equal(t, 500, c.MaxTimeMs)
	assert.Equal(t, 0.40, c.MistakeP)
	assert.Equal(t, 0.15, c.BlunderP)
	assert.Equal(t, 5, c.PoolSize)
	assert.Equal(t, 150, c.Noise)
}
