//go:build !linux

package main

import "os"

// isTerminal is conservative off Linux: diagnostics stay uncolored unless
// LLSHC_COLOR asks for color.
func isTerminal(*os.File) bool {
	return false
}
