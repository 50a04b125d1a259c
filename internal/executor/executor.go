package executor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"minibash/internal/sysenv"
)

type Kind int

const (
	Unknown Kind = iota
	Exited
	Signaled
)

func (k Kind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Kind   Kind
	Code   int
	Signal int
}

func (o Outcome) String() string {
	switch o.Kind {
	case Exited:
		return fmt.Sprintf("Command finished successfully. Return code: %d", o.Code)
	case Signaled:
		return fmt.Sprintf("Command terminated by signal: %d", o.Signal)
	default:
		return "Command ended (unknown status)"
	}
}

func Report(w io.Writer, o Outcome) error {
	_, err := fmt.Fprintln(w, o.String())
	return err
}

type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("fork %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

type WaitError struct {
	Pid int
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("waitpid %d: %v", e.Pid, e.Err)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}

type Executor struct {
	env    sysenv.Env
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	execFailureCode int
	logger          *log.Logger
}

type Option func(*Executor)

func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
	}
}

func WithExecFailureCode(code int) Option {
	return func(e *Executor) {
		e.execFailureCode = code
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

func New(env sysenv.Env, opts ...Option) *Executor {
	e := &Executor{
		env:             env,
		stdout:          io.Discard,
		stderr:          io.Discard,
		execFailureCode: 127,
		logger:          log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.stdout == nil {
		e.stdout = io.Discard
	}
	if e.stderr == nil {
		e.stderr = io.Discard
	}
	return e
}

// A program that cannot be loaded is reported on stderr and yields an
// ordinary Exited outcome with the exec failure code. Only failure to create
// the process (*SpawnError) or to collect its status (*WaitError) are
// returned as errors.
func (e *Executor) Run(path string, argv []string) (Outcome, error) {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    e.env.Environ(),
		Stdin:  e.stdin,
		Stdout: e.stdout,
		Stderr: e.stderr,
	}
	if wd, err := e.env.Getwd(); err == nil {
		cmd.Dir = wd
	}

	if err := cmd.Start(); err != nil {
		if isResourceError(err) {
			return Outcome{}, &SpawnError{Path: path, Err: err}
		}
		fmt.Fprintf(e.stderr, "execv: %s\n", sysenv.Strerror(err))
		e.logger.Printf("exec %s: %v", path, err)
		return Outcome{Kind: Exited, Code: e.execFailureCode}, nil
	}
	e.logger.Printf("started %s pid=%d", path, cmd.Process.Pid)

	err := cmd.Wait()
	if cmd.ProcessState == nil {
		return Outcome{}, &WaitError{Pid: cmd.Process.Pid, Err: err}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The child was reaped; only copying its output failed.
		e.logger.Printf("pid=%d stdio: %v", cmd.Process.Pid, err)
	}

	outcome := classify(cmd.ProcessState.Sys())
	e.logger.Printf("pid=%d %s", cmd.Process.Pid, outcome.Kind)
	return outcome, nil
}

func classify(sys any) Outcome {
	status, ok := sys.(syscall.WaitStatus)
	switch {
	case !ok:
		return Outcome{Kind: Unknown}
	case status.Exited():
		return Outcome{Kind: Exited, Code: status.ExitStatus()}
	case status.Signaled():
		return Outcome{Kind: Signaled, Signal: int(status.Signal())}
	default:
		return Outcome{Kind: Unknown}
	}
}

// isResourceError reports whether a failed start never produced a child.
// Errors without an errno come from setting up the child's stdio.
func isResourceError(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return true
	}
	switch errno {
	case unix.EAGAIN, unix.ENOMEM, unix.EMFILE, unix.ENFILE:
		return true
	default:
		return false
	}
}
