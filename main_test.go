package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"script.sh"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, out.String(), "unknown command")
}

func TestRootCmd_EmptyStdin(t *testing.T) {
	stdin, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer stdin.Close()

	stdout, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	defer stdout.Close()

	origStdin, origStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = stdin, stdout
	t.Cleanup(func() { os.Stdin, os.Stdout = origStdin, origStdout })

	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.Execute())

	got, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	assert.Equal(t, "bash-mini$ \n", string(got))
}
