package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/errors"
	"github.com/lgbarn/manachess-go/internal/game"
)

// play reads one command per line from in and renders the game to out
// after each, until quit or end of input.
func play(s *game.Session, in io.Reader, out io.Writer) error {
	render(out, s)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "log":
			for _, entry := range s.State().Log.Entries() {
				fmt.Fprintln(out, entry)
			}
			continue
		case "fen":
			fmt.Fprintln(out, s.FEN())
			continue
		case "cast":
			report(out, s.Cast())
		default:
			sq, err := chess.ParseSquare(cmd)
			if err != nil {
				fmt.Fprintf(out, "! unknown command %q\n", cmd)
				continue
			}
			report(out, s.Click(sq))
		}
		render(out, s)
	}
	return scanner.Err()
}

// report prints a refused or blocked action.
func report(out io.Writer, err error) {
	if err == nil {
		return
	}
	if reason := errors.Reason(err); reason != "" {
		fmt.Fprintf(out, "! %s\n", reason)
		return
	}
	fmt.Fprintf(out, "! %v\n", err)
}
