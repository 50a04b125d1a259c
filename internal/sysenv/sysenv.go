package sysenv

import (
	"os"

	"golang.org/x/sys/unix"
)

// Env is the interpreter's view of its own process.
type Env interface {
	LookupEnv(key string) (string, bool)
	Environ() []string
	Getwd() (string, error)
	Chdir(dir string) error

	// Executable returns nil if path exists and the current process may
	// execute it.
	Executable(path string) error
}

type OS struct{}

var _ Env = OS{}

func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OS) Environ() []string {
	return os.Environ()
}

func (OS) Getwd() (string, error) {
	return os.Getwd()
}

func (OS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (OS) Executable(path string) error {
	if err := unix.Access(path, unix.X_OK); err != nil {
		return &os.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
