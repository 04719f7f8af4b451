//go:build windows

package main

import "os"

// ttyWidth is not queried on Windows; $COLUMNS is used instead.
func ttyWidth(*os.File) int { return 0 }
