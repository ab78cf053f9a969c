// xadrez is a two-player chess game for the terminal.
package main

import "os"

const programVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
