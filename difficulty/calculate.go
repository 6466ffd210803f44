/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package difficulty

import (
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kopp-chess/chessgo/evaluator"
	"github.com/kopp-chess/chessgo/movegen"
	"github.com/kopp-chess/chessgo/position"
	"github.com/kopp-chess/chessgo/search"
	. "github.com/kopp-chess/chessgo/types"
)

// moverPovEval evaluates pos (always computed from White's POV) from the
// point of view of mover: positive means good for mover.
func moverPovEval(pos *position.Position, mover Color) Value {
	v := evaluator.Evaluate(pos)
	if mover == Black {
		return -v
	}
	return v
}

type scoredMove struct {
	move  Move
	score Value
}

// scoreMoves evaluates each candidate move's resulting position one ply
// deep, from mover's point of view, plus a per-move bonus supplied by
// extra. The one-ply evaluations are independent of each other, so they
// run concurrently; extra must not touch rng or any other shared state.
func scoreMoves(pos *position.Position, legal []Move, mover Color, extra func(i int) Value) []scoredMove {
	scored := make([]scoredMove, len(legal))
	var g errgroup.Group
	for i, m := range legal {
		i, m := i, m
		g.Go(func() error {
			next := position.MakeMove(*pos, m)
			scored[i] = scoredMove{move: m, score: moverPovEval(&next, mover) + extra(i)}
			return nil
		})
	}
	_ = g.Wait()
	return scored
}

// CalculateAIMove runs st.Search at diff's budget, then — with the
// probabilities configured for diff — substitutes a deliberately weaker
// move so the engine plays at the target strength. rng supplies the
// randomness; pass a seeded *rand.Rand for reproducible tests.
func CalculateAIMove(st *search.State, pos *position.Position, diff Level, style Style, rng *rand.Rand) search.Result {
	return calculateAIMove(st, pos, ConfigFor(diff), diff.String(), style, rng)
}

// calculateAIMove is CalculateAIMove's implementation over an explicit
// Config, so tests can exercise mistake/blunder probabilities the named
// Levels don't cover (e.g. mistake_p = 1).
func calculateAIMove(st *search.State, pos *position.Position, cfg Config, diffLabel string, style Style, rng *rand.Rand) search.Result {
	result := st.Search(pos, search.Options{
		MaxDepth:   cfg.MaxDepth,
		MaxTimeMs:  cfg.MaxTimeMs,
		Difficulty: diffLabel,
		Style:      style.String(),
	})

	legal := movegen.GenerateLegalMoves(pos)
	if len(legal) <= 1 {
		return result
	}

	mover := pos.SideToMove

	if cfg.BlunderP > 0 && rng.Float64() < cfg.BlunderP {
		scored := scoreMoves(pos, legal, mover, func(int) Value { return 0 })
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
		worstN := 3
		if worstN > len(scored) {
			worstN = len(scored)
		}
		pick := scored[rng.Intn(worstN)]
		result.BestMove = pick.move
		result.Explanation = append(result.Explanation, "AI made an inaccurate move")
		return result
	}

	if cfg.MistakeP > 0 && rng.Float64() < cfg.MistakeP {
		bias := BiasFor(style)
		noise := make([]Value, len(legal))
		if cfg.Noise > 0 {
			for i := range noise {
				noise[i] = Value(rng.Intn(2*cfg.Noise+1) - cfg.Noise)
			}
		}
		scored := scoreMoves(pos, legal, mover, func(i int) Value { return moveBias(legal[i], bias) + noise[i] })
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

		pool := scored[1:]
		if len(pool) > cfg.PoolSize {
			pool = pool[:cfg.PoolSize]
		}
		if len(pool) == 0 {
			return result
		}

		total := 0
		weights := make([]int, len(pool))
		for i := range pool {
			w := cfg.PoolSize - i
			if w < 1 {
				w = 1
			}
			weights[i] = w
			total += w
		}
		r := rng.Intn(total)
		chosen := 0
		for i, w := range weights {
			if r < w {
				chosen = i
				break
			}
			r -= w
		}

		result.BestMove = pool[chosen].move
		result.Explanation = append(result.Explanation, "slightly suboptimal")
		return result
	}

	return result
}
