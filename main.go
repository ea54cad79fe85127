// storagebox opens a player's storage box in the terminal. The box is built at
// its default size and migrated to the target size by an initialization hook,
// and the grid shown is derived from the migrated capacity.
//
// Settings come from STORAGEBOX_* environment variables (optionally via a
// .env file); flags override them:
//
//	storagebox [--player Steve] [--capacity 54] [--log-file storagebox.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"storagebox/internal/config"
	"storagebox/internal/game"
	"storagebox/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.PlayerName, "player", cfg.PlayerName, "Player name")
	flag.IntVar(&cfg.TargetCapacity, "capacity", cfg.TargetCapacity, "Storage box size after migration")
	logFile := flag.String("log-file", "", "Append logs to this file instead of stderr")
	flag.Parse()

	var out io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(out, cfg.Logging)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: create screen: %v\n", err)
		os.Exit(1)
	}
	g, err := game.New(cfg, screen, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: init screen: %v\n", err)
		os.Exit(1)
	}
	g.Run()
	screen.Fini()
}
