// Package builtins implements the commands that must run inside the
// interpreter process.
package builtins

import (
	"errors"
	"fmt"
	"io"
	"os"

	"minibash/internal/sysenv"
)

// ErrMissingArgument is returned when a builtin is called without a required
// argument.
var ErrMissingArgument = errors.New("missing argument")

// DirectoryChangeError reports a failed cd.
type DirectoryChangeError struct {
	Dir string
	Err error
}

func (e *DirectoryChangeError) Error() string {
	return fmt.Sprintf("cd %s: %v", e.Dir, e.Err)
}

func (e *DirectoryChangeError) Unwrap() error {
	return e.Err
}

// Dispatcher runs builtins against an injected process environment.
type Dispatcher struct {
	env    sysenv.Env
	stderr io.Writer
	exit   func(code int)
}

// New creates a Dispatcher. A nil exit defaults to os.Exit.
func New(env sysenv.Env, stderr io.Writer, exit func(code int)) *Dispatcher {
	if exit == nil {
		exit = os.Exit
	}
	return &Dispatcher{env: env, stderr: stderr, exit: exit}
}

// Handle runs tokens if they name a builtin, writing any failure to stderr.
// It returns false when tokens must be resolved as an external command.
func (d *Dispatcher) Handle(tokens []string) bool {
	handled, err := d.Run(tokens)
	if err != nil {
		fmt.Fprintf(d.stderr, "%s: %s\n", tokens[0], sysenv.Strerror(err))
	}
	return handled
}

// Run is Handle without the diagnostic output.
func (d *Dispatcher) Run(tokens []string) (bool, error) {
	if len(tokens) == 0 {
		return true, nil
	}

	switch tokens[0] {
	case "cd":
		return true, d.cd(tokens)
	case "exit":
		d.exit(0)
		return true, nil
	default:
		return false, nil
	}
}

func (d *Dispatcher) cd(tokens []string) error {
	if len(tokens) < 2 {
		return ErrMissingArgument
	}

	if err := d.env.Chdir(tokens[1]); err != nil {
		return &DirectoryChangeError{Dir: tokens[1], Err: err}
	}
	return nil
}
