// Package cli implements the au3 command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/robinvdvleuten/au3/loader"
	"github.com/robinvdvleuten/au3/output"
	"github.com/robinvdvleuten/au3/parser"
	"github.com/robinvdvleuten/au3/telemetry"
)

const stdinFilename = "<stdin>"

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render(successSymbol), message)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// session holds the per-run context: cancellation on interrupt, the logger
// and the telemetry collector.
type session struct {
	ctx    context.Context
	stderr io.Writer

	collector *telemetry.TimingCollector
	stop      context.CancelFunc
}

// newSession prepares the context for a command. The caller must call close
// once the command is done.
func (g *Globals) newSession(kctx *kong.Context) *session {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	level, err := zerolog.ParseLevel(g.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        kctx.Stderr,
		NoColor:    !isTerminal(os.Stderr),
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()

	s := &session{
		ctx:    logger.WithContext(ctx),
		stderr: kctx.Stderr,
		stop:   stop,
	}

	if g.Telemetry {
		s.collector = telemetry.NewTimingCollector()
		s.ctx = telemetry.WithCollector(s.ctx, s.collector)
	}

	return s
}

// flush prints the timings recorded since the last flush. Watch mode
// flushes once per run.
func (s *session) flush() {
	if s.collector == nil {
		return
	}
	_, _ = fmt.Fprintln(s.stderr)
	s.collector.Report(s.stderr, output.NewStyles(s.stderr))
	s.collector.Reset()
}

func (s *session) close() {
	s.stop()
}

// FileOrStdin accepts either a file path or "-" for stdin.
// For stdin: Filename="<stdin>", Contents populated.
// For files: Filename set, Contents nil (read by loader).
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		return f.readStdin()
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = nil

	return nil
}

// EnsureContents reads stdin if no filename was given.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		return f.readStdin()
	}
	return nil
}

func (f *FileOrStdin) readStdin() error {
	if isTerminal(os.Stdin) {
		return errors.New("no input: pass a file or pipe AutoIt source to stdin")
	}
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	f.Filename = stdinFilename
	f.Contents = contents
	return nil
}

// IsStdin reports whether the input came from stdin.
func (f *FileOrStdin) IsStdin() bool {
	return f.Filename == stdinFilename
}

// Load extracts the functions using LoadBytes for stdin or Load for files.
func (f *FileOrStdin) Load(ctx context.Context, ldr *loader.Loader) (*parser.File, error) {
	if f.IsStdin() {
		return ldr.LoadBytes(ctx, f.Filename, f.Contents)
	}
	return ldr.Load(ctx, f.Filename)
}

// Source returns the source content for error rendering.
func (f *FileOrStdin) Source() ([]byte, error) {
	if f.IsStdin() {
		return loader.TrimBOM(f.Contents), nil
	}
	data, err := os.ReadFile(f.Filename)
	if err != nil {
		return nil, err
	}
	return loader.TrimBOM(data), nil
}
