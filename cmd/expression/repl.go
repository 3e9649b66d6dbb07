package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	expression "github.com/itskodn/Expression"
)

const (
	historyFile = ".expression_history"
	replPrompt  = "> "
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	fmt.Printf("expression %s REPL\n", expression.Version())
	fmt.Println("name=value binds a variable, diff <var> <expr> differentiates, :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	bindings := map[string]string{}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		ln.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		// '=' never occurs in an expression, so any line containing one is
		// a binding. Rebinding an existing name is allowed in the REPL.
		if name, value, ok := strings.Cut(input, "="); ok {
			name = strings.TrimSpace(name)
			value = strings.TrimSpace(value)
			if name == "" || value == "" {
				fmt.Fprintln(os.Stderr, "invalid binding (want name=value)")
				continue
			}
			bindings[name] = value
			fmt.Printf("%s = %s\n", name, value)
			continue
		}

		if rest, ok := strings.CutPrefix(input, "diff "); ok {
			fields := strings.SplitN(strings.TrimSpace(rest), " ", 2)
			if len(fields) < 2 {
				fmt.Fprintln(os.Stderr, "usage: diff <var> <expr>")
				continue
			}
			lines, err := runDiff(fields[1], fields[0], bindings)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			for _, l := range lines {
				fmt.Println(l)
			}
			continue
		}

		out, err := runEval(input, bindings)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
}
