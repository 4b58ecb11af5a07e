package main

// This is an interpreter for Strix expressions written in Go.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ltungv/lox/strix/internal/strix"
	"github.com/peterh/liner"
)

const (
	banner      = "Strix Language REPL | v1.0"
	prompt      = "> "
	historyFile = ".strix_history"
	clearScreen = "\033[H\033[2J"
)

func main() {
	args := os.Args[1:]
	printAST := false
	if len(args) > 0 && args[0] == "--ast" {
		printAST = true
		args = args[1:]
	}
	if len(args) > 1 {
		fmt.Println("Usage: strix [--ast] [script]")
		os.Exit(64)
	}

	reporter := strix.NewSimpleReporter(os.Stderr)
	runner := strix.NewRunner(os.Stdout, reporter, printAST)
	if len(args) != 1 {
		runPrompt(runner, reporter)
	} else {
		runFile(args[0], runner, reporter)
	}
}

// Run the interpreter in REPL mode
func runPrompt(runner *strix.Runner, reporter strix.Reporter) {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ".exit", "Strix::exit()":
			fmt.Println("Bye!")
			return
		case ".clear", "Strix::clear()":
			fmt.Print(clearScreen)
			continue
		}

		ln.AppendHistory(line)
		runner.Run(line)
		reporter.Reset()
	}
}

// Run the given file as script
func runFile(fpath string, runner *strix.Runner, reporter strix.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)
	if !utf8.Valid(bytes) {
		exitOnError(fmt.Errorf("%s: invalid UTF-8 byte found", fpath), 1)
	}

	runner.Run(string(bytes))
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

// historyPath returns the REPL history location, STRIX_HISTORY takes
// precedence over the file in the home directory.
func historyPath() string {
	if p := os.Getenv("STRIX_HISTORY"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
