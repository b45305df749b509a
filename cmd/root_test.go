package cmd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_PrintsUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "unknown subcommand", args: []string{"football"}},
		{name: "several arguments", args: []string{"react", "now"}},
		{name: "unknown flag", args: []string{"--verbose"}},
		{name: "help flag", args: []string{"--help"}},
		{name: "help command", args: []string{"help"}},
		{name: "flag before reactions", args: []string{"--verbose", "reactions"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepDefaultLogger(t)
			stdout := &bytes.Buffer{}
			rootCmd.SetOut(stdout)
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, usageLine+"\n", stdout.String())
		})
	}
}

// keepDefaultLogger restores the process logger replaced by PersistentPreRunE
func keepDefaultLogger(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func TestRootCommand_RegistersReactions(t *testing.T) {
	sub, _, err := rootCmd.Find([]string{"reactions"})
	require.NoError(t, err)
	assert.Equal(t, "reactions", sub.Name())

	sub, rest, err := rootCmd.Find([]string{"reactions", "extra"})
	require.NoError(t, err)
	assert.Equal(t, "reactions", sub.Name())
	assert.Equal(t, []string{"extra"}, rest)
}

func TestRootCommand_RestoresDefaultLogger(t *testing.T) {
	before := slog.Default()
	t.Run("execute", func(t *testing.T) {
		keepDefaultLogger(t)
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{})
		t.Cleanup(func() { rootCmd.SetArgs(nil) })

		require.NoError(t, rootCmd.Execute())
		assert.NotSame(t, before, slog.Default())
	})
	assert.Same(t, before, slog.Default())
}

func TestNewLogger(t *testing.T) {
	cmd := &cobra.Command{}
	stderr := &bytes.Buffer{}
	cmd.SetErr(stderr)

	logger, err := newLogger(cmd, "debug")
	require.NoError(t, err)
	logger.Debug("visible")
	assert.Contains(t, stderr.String(), "visible")

	stderr.Reset()
	logger, err = newLogger(cmd, "")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")

	_, err = newLogger(cmd, "loud")
	require.Error(t, err)
}
