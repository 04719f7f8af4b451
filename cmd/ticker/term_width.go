package main

import (
	"os"
	"strconv"
)

// detectTerminalWidth returns the usable table width: the tty width of
// stdout, else $COLUMNS, else 0 for unbounded.
func detectTerminalWidth() int {
	if n := ttyWidth(os.Stdout); n > 0 {
		return n
	}
	if cols, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
