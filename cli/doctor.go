package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize/english"

	"github.com/robinvdvleuten/au3/output"
	"github.com/robinvdvleuten/au3/parser"
)

// DoctorCmd provides doctor utilities for debugging AutoIt files.
type DoctorCmd struct {
	Lex LexCmd `cmd:"" help:"Show lexical tokens from an AutoIt file."`
}

// LexCmd shows lexical tokens from an AutoIt file.
type LexCmd struct {
	File FileOrStdin `help:"AutoIt input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	All  bool        `help:"Include Space and LineFeed tokens." short:"a"`
}

// kindWidth fits the longest kind name.
const kindWidth = 13

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.Source()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	styles := output.NewStyles(ctx.Stdout)
	invalid := 0

	// Format: KIND line:col "content"
	for _, tok := range parser.NewScanner(content).ScanAll() {
		if tok.Is(parser.End) {
			break
		}
		if !cmd.All && tok.IsOneOf(parser.Space, parser.LineFeed) {
			continue
		}
		if tok.Is(parser.Error) {
			invalid++
		}

		kind := fmt.Sprintf("%-*s", kindWidth, tok.Kind)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %d:%d    %q\n",
			styles.Token(tok.Kind, kind),
			tok.Line,
			tok.Column,
			tok.String(content))
	}

	if invalid > 0 {
		summary := english.Plural(invalid, "invalid token", "")
		printError(ctx.Stderr, summary)
		return NewCommandError(1, summary)
	}

	return nil
}
