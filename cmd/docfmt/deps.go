package main

import (
	"io"
	"os"
	"time"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Now    func() time.Time
	Getenv func(string) string
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:    time.Now,
		Getenv: os.Getenv,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
