package main

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

// newLogger builds the text logger for the level name. Entries go to path
// when it is set, otherwise to stderr. The returned func closes the file.
func newLogger(level, path string, stderr io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	w, closer := stderr, func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f.Close
	}
	return &log.Logger{Handler: text.New(w), Level: lvl}, closer, nil
}
