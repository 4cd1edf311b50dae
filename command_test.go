package pstoedit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.Equal(t, []string{"pstoedit"}, cmd.Argv(), "program-name placeholder must be the first argument")
}

func TestCommandArgOrder(t *testing.T) {
	cmd := NewCommand()
	require.NoError(t, cmd.Arg("-f"))
	require.NoError(t, cmd.Arg("svg"))
	require.NoError(t, cmd.Args("input.ps", "output.svg"))

	assert.Equal(t, []string{"pstoedit", "-f", "svg", "input.ps", "output.svg"}, cmd.Argv())
}

func TestCommandArgPreservesBytes(t *testing.T) {
	// Arbitrary non-NUL bytes must round-trip exactly, including
	// non-ASCII and whitespace.
	args := []string{"-f", "latex2e", "weird \t arg", "ümläut.ps", "出力.tex"}

	cmd := NewCommand()
	require.NoError(t, cmd.Args(args...))
	assert.Equal(t, append([]string{"pstoedit"}, args...), cmd.Argv())
}

func TestCommandArgEmbeddedNul(t *testing.T) {
	cmd := NewCommand()
	err := cmd.Arg("bad\x00arg")

	var argErr ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "bad\x00arg", argErr.Arg)
	assert.Equal(t, []string{"pstoedit"}, cmd.Argv(), "invalid argument must not be appended")
}

func TestCommandArgsPartialFailure(t *testing.T) {
	cmd := NewCommand()
	err := cmd.Args("-f", "svg", "nul\x00byte", "never-added")

	require.Error(t, err)
	// Arguments before the failure stay; the failing one and everything
	// after it are dropped.
	assert.Equal(t, []string{"pstoedit", "-f", "svg"}, cmd.Argv())
}

func TestCommandGs(t *testing.T) {
	cmd := NewCommand()
	require.NoError(t, cmd.Gs("/usr/bin/gs"))
	assert.Equal(t, "/usr/bin/gs", cmd.gs)
	assert.True(t, cmd.hasGs)

	err := cmd.Gs("bad\x00path")
	var argErr ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "/usr/bin/gs", cmd.gs, "failed override must not clobber the previous one")
}

func TestCommandArgvIsACopy(t *testing.T) {
	cmd := NewCommand()
	require.NoError(t, cmd.Arg("-gstest"))

	argv := cmd.Argv()
	argv[0] = "mutated"
	assert.Equal(t, []string{"pstoedit", "-gstest"}, cmd.Argv())
}

func TestStatusToError(t *testing.T) {
	assert.NoError(t, statusToError(0))
	assert.ErrorIs(t, statusToError(-1), ErrNotInitialized)

	err := statusToError(7)
	var convErr ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 7, convErr.Code)
	assert.False(t, errors.Is(err, ErrNotInitialized))
}
