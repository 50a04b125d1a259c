package sysenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_Executable(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "exe")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o644))

	env := OS{}
	assert.NoError(t, env.Executable(exe))
	// No execute bit at all fails X_OK even for root.
	assert.Error(t, env.Executable(plain))

	err := env.Executable(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var pathErr *os.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "access", pathErr.Op)
}

func TestOS_LookupEnv(t *testing.T) {
	t.Setenv("MINIBASH_SYSENV_TEST", "value")

	val, ok := OS{}.LookupEnv("MINIBASH_SYSENV_TEST")
	assert.True(t, ok)
	assert.Equal(t, "value", val)
	assert.Contains(t, OS{}.Environ(), "MINIBASH_SYSENV_TEST=value")
}

func TestStrerror(t *testing.T) {
	cases := map[string]struct {
		err      error
		expected string
	}{
		"bare errno":    {syscall.ENOENT, "No such file or directory"},
		"path error":    {&os.PathError{Op: "chdir", Path: "/x", Err: syscall.ENOTDIR}, "Not a directory"},
		"wrapped":       {fmt.Errorf("cd: %w", &os.PathError{Op: "chdir", Path: "/x", Err: syscall.EACCES}), "Permission denied"},
		"no errno":      {errors.New("missing argument"), "missing argument"},
		"unknown errno": {syscall.Errno(4095), "Errno 4095"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expected, Strerror(tc.err))
		})
	}
}
