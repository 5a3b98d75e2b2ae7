package main

import (
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
)

const historyFile = ".llshc_history"

// config holds defaults taken from the environment. Command-line flags
// override them.
type config struct {
	color   bool
	recover bool
	history string
}

// loadConfig reads:
//
//	LLSHC_COLOR    force colored diagnostics on or off
//	NO_COLOR       disable color when LLSHC_COLOR is unset
//	LLSHC_RECOVER  report every syntax error instead of stopping at the first
//	LLSHC_HISTORY  REPL history file (default ~/.llshc_history)
func loadConfig() config {
	cfg := config{
		color:   isTerminal(os.Stderr) && !env.Has("NO_COLOR"),
		recover: env.Bool("LLSHC_RECOVER"),
		history: env.Str("LLSHC_HISTORY", defaultHistoryPath()),
	}
	if env.Has("LLSHC_COLOR") {
		cfg.color = env.Bool("LLSHC_COLOR")
	}
	return cfg
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
