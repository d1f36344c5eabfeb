// manachess is a terminal chess game with mana, cooldowns and two abilities:
// the knight's Charge and the rook's Bulwark.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/manachess-go/internal/config"
	"github.com/lgbarn/manachess-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("manachess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(cfg.Level())

	session, err := game.NewSession(cfg, log.Log)
	if err != nil {
		log.WithError(err).Error("cannot start game")
		os.Exit(1)
	}

	if err := play(session, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("input")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: manachess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Chess with mana, cooldowns and piece abilities.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  <square>  Click a square (e.g. e2): select, move or pick a target\n")
	fmt.Fprintf(os.Stderr, "  cast      Cast the ability of the selected piece\n")
	fmt.Fprintf(os.Stderr, "  log       Show the game log\n")
	fmt.Fprintf(os.Stderr, "  fen       Show the current position\n")
	fmt.Fprintf(os.Stderr, "  quit      Leave the game\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment variables prefixed %s override the defaults; flags override both.\n", config.EnvPrefix)
}
