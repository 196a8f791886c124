// Package loader reads AutoIt source files and extracts their functions.
//
// It owns the file-system side of parsing: reading the file, dropping a
// UTF-8 byte-order mark, timing the work through the telemetry collector in
// the context, and choosing between lenient and strict error handling.
//
// Example usage:
//
//	ldr := loader.New()
//	file, err := ldr.Load(ctx, "main.au3")
//
//	// Fail without a File on the first problem
//	ldr = loader.New(loader.WithStrict())
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"

	"github.com/robinvdvleuten/au3/parser"
	"github.com/robinvdvleuten/au3/telemetry"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads and parses AutoIt files.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithStrict(), WithKeepBOM())
type Loader struct {
	// Strict makes Load return only the first error, and no File, when the
	// source contains lexical or structural errors.
	Strict bool

	// KeepBOM leaves a leading UTF-8 byte-order mark in the source. The
	// scanner then reports it as invalid bytes.
	KeepBOM bool
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithStrict stops at the first error instead of returning a partial File.
func WithStrict() Option {
	return func(l *Loader) {
		l.Strict = true
	}
}

// WithKeepBOM disables stripping of the UTF-8 byte-order mark.
func WithKeepBOM() Option {
	return func(l *Loader) {
		l.KeepBOM = true
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads filename and extracts its functions.
func (l *Loader) Load(ctx context.Context, filename string) (*parser.File, error) {
	timer := telemetry.Start(ctx, "Load "+filename)
	defer timer.End()

	read := timer.Child("Read file")
	data, err := os.ReadFile(filename)
	read.End()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	read.Annotate(humanize.Bytes(uint64(len(data))))

	return l.parse(ctx, timer, filename, data)
}

// LoadBytes extracts the functions of data, which was read from filename.
// Use it for stdin and editor buffers.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*parser.File, error) {
	timer := telemetry.Start(ctx, "Load "+filename)
	defer timer.End()

	return l.parse(ctx, timer, filename, data)
}

func (l *Loader) parse(ctx context.Context, timer telemetry.Timer, filename string, data []byte) (*parser.File, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !l.KeepBOM {
		data = TrimBOM(data)
	}

	extract := timer.Child("Extract functions")
	file, err := parser.ParseFunctions(ctx, filename, data)
	extract.End()

	if file != nil {
		extract.Annotate(english.Plural(len(file.Functions), "function", ""))
		zerolog.Ctx(ctx).Debug().
			Str("file", filename).
			Int("functions", len(file.Functions)).
			Int("lines", file.Lines).
			Msg("extracted functions")
	}

	if err == nil {
		return file, nil
	}

	var list *parser.ErrorList
	if l.Strict && errors.As(err, &list) {
		return nil, list.Errors[0]
	}
	return file, err
}

// TrimBOM removes a leading UTF-8 byte-order mark.
func TrimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
