package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	t.Run("implements error interface", func(t *testing.T) {
		err := NewCommandError(1, "2 errors in 1 file")
		assert.EqualError(t, err, "2 errors in 1 file")
	})

	t.Run("falls back to a generic message", func(t *testing.T) {
		err := NewCommandError(1, "")
		assert.EqualError(t, err, "command failed")
	})

	t.Run("returns exit code", func(t *testing.T) {
		err := NewCommandError(42, "")
		assert.Equal(t, 42, err.ExitCode())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		var err error = fmt.Errorf("funcs: %w", NewCommandError(3, "failed"))

		var cmdErr *CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 3, cmdErr.ExitCode())
	})
}
