package loader

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/au3/parser"
	"github.com/robinvdvleuten/au3/telemetry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "main.au3", "Func _Main($a)\nEndFunc\n\nFunc _Other()\nEndFunc\n")

	file, err := New().Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, path, file.Filename)
	assert.Equal(t, 2, len(file.Functions))
	assert.Equal(t, "_Main", file.Functions[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.au3")

	file, err := New().Load(context.Background(), path)
	assert.Zero(t, file)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadBytesStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "Func A()\nEndFunc"...)

	file, err := New().LoadBytes(context.Background(), "bom.au3", data)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(file.Functions))
	assert.Equal(t, "Func A()\nEndFunc", string(file.Source))
	assert.Equal(t, 0, file.Functions[0].Start)
}

func TestLoadBytesKeepBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "Func A()\nEndFunc"...)

	file, err := New(WithKeepBOM()).LoadBytes(context.Background(), "bom.au3", data)
	assert.Error(t, err)

	// Each BOM byte is an unrecognized byte; the function still extracts
	var list *parser.ErrorList
	assert.True(t, errors.As(err, &list))
	assert.Equal(t, 3, len(list.Errors))
	assert.Equal(t, 1, len(file.Functions))
	assert.Equal(t, 3, file.Functions[0].Start)
}

func TestLoadLenientReturnsPartialFile(t *testing.T) {
	source := "Func Good()\nEndFunc\n$x = ~1\nFunc Bad("

	file, err := New().LoadBytes(context.Background(), "partial.au3", []byte(source))
	assert.Error(t, err)
	assert.NotZero(t, file)
	assert.Equal(t, 1, len(file.Functions))

	var list *parser.ErrorList
	assert.True(t, errors.As(err, &list))
	assert.Equal(t, 2, len(list.Errors))
}

func TestLoadStrictReturnsFirstError(t *testing.T) {
	source := "Func Good()\nEndFunc\n$x = ~1\nFunc Bad("

	file, err := New(WithStrict()).LoadBytes(context.Background(), "strict.au3", []byte(source))
	assert.Zero(t, file)

	var lexErr *parser.LexError
	assert.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 3, lexErr.Pos.Line)

	var list *parser.ErrorList
	assert.False(t, errors.As(err, &list))
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file, err := New().LoadBytes(ctx, "c.au3", []byte("Local $x"))
	assert.Zero(t, file)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadRecordsTelemetry(t *testing.T) {
	path := writeFile(t, "timed.au3", "Func A()\nEndFunc\nFunc B()\nEndFunc\n")

	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	_, err := New().Load(ctx, path)
	assert.NoError(t, err)

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	report := buf.String()
	assert.Contains(t, report, "Load "+path)
	assert.Contains(t, report, "Read file (34 B)")
	assert.Contains(t, report, "Extract functions (2 functions)")
}

func TestTrimBOM(t *testing.T) {
	assert.Equal(t, []byte("Func"), TrimBOM([]byte("\xEF\xBB\xBFFunc")))
	assert.Equal(t, []byte("Func"), TrimBOM([]byte("Func")))

	// Only a leading mark is removed
	assert.Equal(t, []byte("a\xEF\xBB\xBF"), TrimBOM([]byte("a\xEF\xBB\xBF")))
}
