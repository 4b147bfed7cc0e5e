package main

import (
	"errors"
	"os"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "handlevet"
)

// exitError carries a specific process exit code through cobra's error
// return. Plain errors exit 1.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}
