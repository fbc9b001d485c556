package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-solver/internal/board"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

var log = logrus.New()

var (
	mines      int
	perCell    int
	maxConfigs int
	verbose    bool
)

func init() {
	flag.IntVar(&mines, "mines", -1, "number of mines not yet flagged (required)")
	flag.IntVar(&perCell, "per-cell", 1, "max mines per cell")
	flag.IntVar(&maxConfigs, "max-configs", solver.DefaultMaxConfigs,
		"configuration enumeration budget")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] [board-file]\n\n"+
				"Reads a board in text form (\"#\" unclicked, digits for numbers,\n"+
				"\"F1\" flags) from board-file or stdin and prints the probability\n"+
				"of each unclicked cell containing a mine.\n\n",
			os.Args[0],
		)
		flag.PrintDefaults()
	}
}

func readBoard() (*board.Board, error) {
	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return board.Parse(string(text))
}

func printProbs(b *board.Board, result *solver.Result) {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := board.Point{X: x, Y: y}
			if prob, ok := result.Probs[p]; ok {
				fmt.Fprintf(&sb, "%5.1f ", 100*prob)
			} else {
				fmt.Fprintf(&sb, "%5s ", b.At(p))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func main() {
	flag.Parse()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if mines < 0 {
		flag.Usage()
		os.Exit(2)
	}

	b, err := readBoard()
	if err != nil {
		log.Fatal("unable to read board: ", err)
	}

	result, err := solver.Solve(
		b, mines, perCell, solver.WithMaxConfigs(maxConfigs),
	)
	if err != nil {
		log.Fatal("unable to solve board: ", err)
	}

	log.WithFields(logrus.Fields{
		"groups":  len(result.Groups),
		"configs": result.ConfigCount,
	}).Debug("solved")

	printProbs(b, result)

	if result.OuterCells > 0 {
		fmt.Printf(
			"outer region: %d cells, ~%d mines, %.1f%% each\n",
			result.OuterCells, result.OuterMines, 100*result.OuterProb,
		)
	}
}
