/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2024 chessgo contributors
 */

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/kopp-chess/chessgo/config"
	"github.com/kopp-chess/chessgo/difficulty"
	"github.com/kopp-chess/chessgo/logging"
	"github.com/kopp-chess/chessgo/notation"
	"github.com/kopp-chess/chessgo/position"
	"github.com/kopp-chess/chessgo/search"
)

var out = logging.Out

var log = logging.GetLog("main")

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", config.ConfigFilePath, "path to configuration settings file")
	fen := flag.String("fen", position.StartingFEN, "FEN of the position to search")
	depth := flag.Int("depth", 0, "max search depth; 0 means use the difficulty level's default")
	timeMs := flag.Int("time", 0, "max search time in milliseconds; 0 means use the difficulty level's default")
	diffFlag := flag.String("difficulty", "Expert", "Beginner|Easy|Medium|Hard|Expert")
	styleFlag := flag.String("style", "Balanced", "Aggressive|Defensive|Balanced")
	seed := flag.Int64("seed", 0, "RNG seed for the difficulty layer's move substitution; 0 seeds from the clock")
	doProfile := flag.Bool("profile", false, "enable CPU profiling, writing a profile to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	config.ConfigFilePath = *configFile
	config.Setup()

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		log.Errorf("invalid FEN %q: %v", *fen, err)
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	diff, ok := parseLevel(*diffFlag)
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown difficulty:", *diffFlag)
		os.Exit(1)
	}
	style, ok := parseStyle(*styleFlag)
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown style:", *styleFlag)
		os.Exit(1)
	}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	st := search.NewState(config.Settings.Search.TtSizeMB)

	var r search.Result
	if *depth > 0 || *timeMs > 0 {
		// An explicit depth/time override bypasses the difficulty layer's
		// move substitution and runs the raw search.
		cfg := difficulty.ConfigFor(diff)
		if *depth > 0 {
			cfg.MaxDepth = *depth
		}
		if *timeMs > 0 {
			cfg.MaxTimeMs = *timeMs
		}
		r = st.Search(&pos, search.Options{MaxDepth: cfg.MaxDepth, MaxTimeMs: cfg.MaxTimeMs})
	} else {
		r = difficulty.CalculateAIMove(st, &pos, diff, style, rng)
	}

	san := notation.MoveToSAN(&pos, r.BestMove)
	out.Printf("bestmove %s (%s)\n", notation.MoveToCoord(r.BestMove), san)
	out.Printf("evaluation %d depth %d nodes %d time %dms\n", r.Evaluation, r.Depth, r.NodesSearched, r.ElapsedMs)
	if len(r.Explanation) > 0 {
		out.Println(strings.Join(r.Explanation, "; "))
	}
}

func parseLevel(s string) (difficulty.Level, bool) {
	switch strings.ToLower(s) {
	case "beginner":
		return difficulty.Beginner, true
	case "easy":
		return difficulty.Easy, true
	case "medium":
		return difficulty.Medium, true
	case "hard":
		return difficulty.Hard, true
	case "expert":
		return difficulty.Expert, true
	default:
		return difficulty.Expert, false
	}
}

func parseStyle(s string) (difficulty.Style, bool) {
	switch strings.ToLower(s) {
	case "aggressive":
		return difficulty.Aggressive, true
	case "defensive":
		return difficulty.Defensive, true
	case "balanced":
		return difficulty.Balanced, true
	default:
		return difficulty.Balanced, false
	}
}

func printVersionInfo() {
	out.Println("chessgo")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
