package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize/english"
	"github.com/goccy/go-json"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	au3errors "github.com/robinvdvleuten/au3/errors"
	"github.com/robinvdvleuten/au3/loader"
	"github.com/robinvdvleuten/au3/parser"
	"github.com/robinvdvleuten/au3/telemetry"
)

// CheckCmd reports lexical and structural errors.
type CheckCmd struct {
	Paths  []string `help:"AutoIt files or glob patterns such as 'src/**/*.au3' (use '-' or omit for stdin)." arg:"" optional:""`
	Jobs   int      `help:"Number of files checked in parallel." default:"4" short:"j"`
	Strict bool     `help:"Report only the first error of each file."`
	Format string   `help:"Output format: ${enum}." enum:"text,json" default:"text" short:"f"`
}

// checkResult is the outcome of checking one file.
type checkResult struct {
	filename string
	source   []byte
	errs     []error
}

// checkFileJSON is the JSON form of a checkResult.
type checkFileJSON struct {
	File   string                `json:"file"`
	Errors []au3errors.ErrorJSON `json:"errors"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	files, err := expandPaths(cmd.Paths)
	if err != nil {
		return err
	}

	s := globals.newSession(ctx)
	defer s.close()

	timer := telemetry.Start(s.ctx, "check "+english.Plural(len(files), "file", ""))
	results, err := cmd.checkAll(telemetry.WithTimer(s.ctx, timer), files)
	timer.End()
	s.flush()
	if err != nil {
		return err
	}

	if cmd.Format == "json" {
		return reportJSON(ctx.Stdout, results)
	}
	return reportResults(ctx.Stdout, ctx.Stderr, results)
}

// checkAll checks files concurrently. Results keep the order of files.
func (cmd *CheckCmd) checkAll(ctx context.Context, files []string) ([]checkResult, error) {
	var opts []loader.Option
	if cmd.Strict {
		opts = append(opts, loader.WithStrict())
	}
	ldr := loader.New(opts...)

	results := make([]checkResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cmd.Jobs, 1))

	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			results[i] = checkFile(gctx, ldr, filename)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(ctx context.Context, ldr *loader.Loader, filename string) checkResult {
	result := checkResult{filename: filename}

	var data []byte
	var err error
	if filename == stdinFilename {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		result.errs = []error{fmt.Errorf("failed to read %s: %w", filename, err)}
		return result
	}

	result.source = loader.TrimBOM(data)

	_, err = ldr.LoadBytes(ctx, filename, data)
	var list *parser.ErrorList
	switch {
	case err == nil:
	case errors.As(err, &list):
		result.errs = list.Errors
	default:
		result.errs = []error{err}
	}
	return result
}

// reportResults renders every error and prints a summary. It returns a
// CommandError when any file has errors.
func reportResults(stdout, stderr io.Writer, results []checkResult) error {
	total, failed := 0, 0
	for _, r := range results {
		if len(r.errs) == 0 {
			continue
		}
		if failed > 0 {
			_, _ = fmt.Fprintln(stderr)
		}
		_, _ = fmt.Fprint(stderr, NewErrorRenderer(r.source).RenderAll(r.errs))
		total += len(r.errs)
		failed++
	}

	if failed == 0 {
		printSuccess(stdout, fmt.Sprintf("Check passed (%s)", english.Plural(len(results), "file", "")))
		return nil
	}

	summary := fmt.Sprintf("%s in %s", english.Plural(total, "error", ""), english.Plural(failed, "file", ""))
	_, _ = fmt.Fprintln(stderr)
	printError(stderr, summary)
	return NewCommandError(1, summary)
}

// reportJSON writes every file with its errors to stdout. It returns a
// CommandError when any file has errors.
func reportJSON(stdout io.Writer, results []checkResult) error {
	files := make([]checkFileJSON, len(results))
	total := 0
	for i, r := range results {
		files[i] = checkFileJSON{
			File:   r.filename,
			Errors: au3errors.NewJSONFormatter(au3errors.WithSource(r.source)).FormatAllToSlice(r.errs),
		}
		total += len(r.errs)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(files); err != nil {
		return err
	}

	if total > 0 {
		return NewCommandError(1, english.Plural(total, "error", ""))
	}
	return nil
}

// expandPaths resolves the check arguments. No arguments or "-" mean stdin;
// arguments with glob metacharacters are expanded and must match a file.
func expandPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var files []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}

	for _, p := range paths {
		switch {
		case p == "-":
			if isTerminal(os.Stdin) {
				return nil, errors.New("no input: pass a file or pipe AutoIt source to stdin")
			}
			add(stdinFilename)

		case strings.ContainsAny(p, "*?[{"):
			matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %q", p)
			}
			slices.Sort(matches)
			for _, m := range matches {
				add(m)
			}

		default:
			if _, err := os.Stat(p); err != nil {
				return nil, err
			}
			add(p)
		}
	}

	return files, nil
}
