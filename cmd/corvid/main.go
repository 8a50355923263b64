//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

// Command corvid is a thin line-oriented front end over the Engine facade:
// "position fen <FEN>", "go depth N" / "go movetime N" / "go infinite",
// "stop", "quit". It is intentionally not a UCI implementation (full
// protocol negotiation is out of scope per spec.md §1) — just enough of a
// shell to exercise SetPosition/Search/Stop/OnProgress/OnFinish from a
// terminal, in the shape of the teacher's internal/uci command loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/corvid/internal/config"
	"github.com/frankkopp/corvid/internal/engine"
	"github.com/frankkopp/corvid/internal/logging"
	"github.com/frankkopp/corvid/internal/position"
	"github.com/frankkopp/corvid/internal/search"
	. "github.com/frankkopp/corvid/internal/types"
)

// numberPrinter renders node/nps counts with thousands separators, the
// way the teacher's out.Sprintf formats large search statistics for a
// human reading the console rather than a UCI GUI parsing it.
var numberPrinter = message.NewPrinter(language.German)

func main() {
	configPath := flag.String("config", "./config.toml", "path to config.toml")
	logLevel := flag.String("loglevel", "", "override the configured log level")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corvid: failed to load %s: %v\n", *configPath, err)
		os.Exit(1)
	}
	level := settings.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logging.Setup(logging.ParseLevel(level))

	e := engine.New(settings.TTSizeMB)
	e.OnProgress(printEvent("info"))
	e.OnFinish(printEvent("bestmove"))

	runLoop(e)
}

func printEvent(tag string) func(engine.SearchEvent) {
	return func(ev engine.SearchEvent) {
		if tag == "bestmove" {
			fmt.Printf("bestmove %s\n", ev.BestMove)
			return
		}
		numberPrinter.Printf("info depth %d seldepth %d score %s nodes %d nps %d pv %s\n",
			ev.Depth, ev.SelDepth, ev.Score, ev.Nodes, ev.Nps, ev.PV.StringUci())
	}
}

func runLoop(e *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "position":
			handlePosition(e, fields[1:])
		case "go":
			handleGo(e, fields[1:])
		case "stop":
			e.Stop()
		case "quit":
			e.Stop()
			e.AwaitIdle()
			return
		default:
			fmt.Fprintf(os.Stderr, "corvid: unknown command %q\n", fields[0])
		}
	}
}

func handlePosition(e *engine.Engine, args []string) {
	if len(args) < 2 || args[0] != "fen" {
		fmt.Fprintln(os.Stderr, "corvid: usage: position fen <FEN...>")
		return
	}
	fen := strings.Join(args[1:], " ")
	if err := e.SetPosition(fen); err != nil {
		fmt.Fprintf(os.Stderr, "corvid: %v\n", err)
	}
}

// handleGo parses a "go" line's options into search.Limits, in the shape
// of the subset of UCI's "go" command the teacher's engine accepts:
// depth/movetime/infinite plus a game clock (wtime/btime/winc/binc/
// movestogo) and a root move restriction (searchmoves).
func handleGo(e *engine.Engine, args []string) {
	limits := search.Limits{}
	var searchMoves []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.MaxDepth = n
				}
			}
		case "movetime":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.MoveTime = time.Duration(n) * time.Millisecond
				}
			}
		case "wtime":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.TimeLeft[White] = time.Duration(n) * time.Millisecond
				}
			}
		case "btime":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.TimeLeft[Black] = time.Duration(n) * time.Millisecond
				}
			}
		case "winc":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.Increment[White] = time.Duration(n) * time.Millisecond
				}
			}
		case "binc":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.Increment[Black] = time.Duration(n) * time.Millisecond
				}
			}
		case "movestogo":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.MovesToGo = n
				}
			}
		case "searchmoves":
			i++
			for i < len(args) {
				searchMoves = append(searchMoves, args[i])
				i++
			}
		case "infinite":
			limits.Infinite = true
		}
	}
	if len(searchMoves) > 0 {
		limits.SearchMoves = resolveMoves(e.Position(), searchMoves)
	}
	if err := e.Search(limits); err != nil {
		fmt.Fprintf(os.Stderr, "corvid: %v\n", err)
	}
}

// resolveMoves matches UCI move strings (e.g. "e2e4") against pos's legal
// moves; unrecognized strings are silently dropped.
func resolveMoves(pos *position.Position, uci []string) []Move {
	legal := pos.LegalMoves(position.GenAll)
	var moves []Move
	for _, want := range uci {
		for i := 0; i < legal.Len(); i++ {
			if m := legal.At(i); m.String() == want {
				moves = append(moves, m)
				break
			}
		}
	}
	return moves
}
