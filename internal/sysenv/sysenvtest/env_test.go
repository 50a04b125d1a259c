package sysenvtest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Chdir(t *testing.T) {
	env := New(nil)
	require.NoError(t, env.Mkdir("/home/user/projects"))
	require.NoError(t, env.WriteFile("/home/user/notes.txt", 0o644))

	require.NoError(t, env.Chdir("/home/user"))
	wd, _ := env.Getwd()
	assert.Equal(t, "/home/user", wd)

	require.NoError(t, env.Chdir("projects"))
	wd, _ = env.Getwd()
	assert.Equal(t, "/home/user/projects", wd)

	require.NoError(t, env.Chdir(".."))
	wd, _ = env.Getwd()
	assert.Equal(t, "/home/user", wd)

	err := env.Chdir("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.Error(t, env.Chdir("notes.txt"))

	wd, _ = env.Getwd()
	assert.Equal(t, "/home/user", wd, "failed chdir must not move")
}

func TestEnv_Executable(t *testing.T) {
	env := New(nil)
	require.NoError(t, env.WriteFile("/bin/ls", 0o755))
	require.NoError(t, env.WriteFile("/bin/readme", 0o644))

	assert.NoError(t, env.Executable("/bin/ls"))
	assert.True(t, errors.Is(env.Executable("/bin/readme"), fs.ErrPermission))
	assert.True(t, errors.Is(env.Executable("/bin/nope"), fs.ErrNotExist))
}

func TestEnv_Vars(t *testing.T) {
	env := New(map[string]string{"HOME": "/home/user"})

	home, ok := env.LookupEnv("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/home/user", home)

	env.Setenv("A", "B")
	assert.Equal(t, []string{"A=B", "HOME=/home/user"}, env.Environ())

	env.Unsetenv("HOME")
	_, ok = env.LookupEnv("HOME")
	assert.False(t, ok)
}
