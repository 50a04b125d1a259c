// Package sysenvtest provides an in-memory sysenv.Env for tests.
package sysenvtest

import (
	"fmt"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"

	"minibash/internal/sysenv"
)

// Env is a sysenv.Env backed by an in-memory filesystem and a map of
// environment variables. The working directory starts at "/".
type Env struct {
	Fs afero.Fs

	mu  sync.RWMutex
	env map[string]string
	cwd string
}

var _ sysenv.Env = (*Env)(nil)

// New creates an Env holding a copy of vars.
func New(vars map[string]string) *Env {
	env := make(map[string]string, len(vars))
	for k, v := range vars {
		env[k] = v
	}
	return &Env{
		Fs:  afero.NewMemMapFs(),
		env: env,
		cwd: "/",
	}
}

// Setenv sets an environment variable.
func (e *Env) Setenv(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.env[key] = value
}

// Unsetenv removes an environment variable.
func (e *Env) Unsetenv(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.env, key)
}

// Mkdir creates dir and its parents.
func (e *Env) Mkdir(dir string) error {
	return e.Fs.MkdirAll(e.abs(dir), 0o755)
}

// WriteFile creates a file with the given permission bits, creating parent
// directories as needed.
func (e *Env) WriteFile(name string, perm os.FileMode) error {
	name = e.abs(name)
	if err := e.Fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	if err := afero.WriteFile(e.Fs, name, nil, perm); err != nil {
		return err
	}
	return e.Fs.Chmod(name, perm)
}

// LookupEnv implements sysenv.Env.LookupEnv.
func (e *Env) LookupEnv(key string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	val, ok := e.env[key]
	return val, ok
}

// Environ implements sysenv.Env.Environ.
func (e *Env) Environ() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.env))
	for k, v := range e.env {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}

// Getwd implements sysenv.Env.Getwd.
func (e *Env) Getwd() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cwd, nil
}

// Chdir implements sysenv.Env.Chdir.
func (e *Env) Chdir(dir string) error {
	target := e.abs(dir)

	info, err := e.Fs.Stat(target)
	switch {
	case err != nil:
		return &os.PathError{Op: "chdir", Path: dir, Err: unix.ENOENT}
	case !info.IsDir():
		return &os.PathError{Op: "chdir", Path: dir, Err: unix.ENOTDIR}
	case info.Mode().Perm()&0o111 == 0:
		return &os.PathError{Op: "chdir", Path: dir, Err: unix.EACCES}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cwd = target
	return nil
}

// Executable implements sysenv.Env.Executable. Like access(2) with X_OK, a
// directory with a search bit counts as executable.
func (e *Env) Executable(name string) error {
	info, err := e.Fs.Stat(e.abs(name))
	if err != nil {
		return &os.PathError{Op: "access", Path: name, Err: unix.ENOENT}
	}
	if info.Mode().Perm()&0o111 == 0 {
		return &os.PathError{Op: "access", Path: name, Err: unix.EACCES}
	}
	return nil
}

func (e *Env) abs(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return path.Join(e.cwd, name)
}
