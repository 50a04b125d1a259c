package repl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"minibash/internal/builtins"
	"minibash/internal/config"
	"minibash/internal/executor"
	"minibash/internal/parser"
	"minibash/internal/resolver"
	"minibash/internal/sysenv"
)

type Dispatcher interface {
	Handle(tokens []string) bool
}

type Resolver interface {
	Resolve(command string) (string, bool)
}

type Runner interface {
	Run(path string, argv []string) (executor.Outcome, error)
}

type Shell struct {
	cfg    *config.Config
	lines  *LineReader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	builtins Dispatcher
	resolver Resolver
	runner   Runner

	exiting bool
}

func New(cfg *config.Config, env sysenv.Env, stdin io.Reader, stdout, stderr io.Writer, logger *log.Logger) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Shell{
		cfg:    cfg,
		lines:  NewLineReader(stdin, cfg.MaxLineBytes),
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
	// Children only share stdin when it is a real file; a plain reader is
	// drained by the line reader's buffer and would be copied concurrently.
	var childStdin io.Reader
	if f, ok := stdin.(*os.File); ok {
		childStdin = f
	}

	s.builtins = builtins.New(env, stderr, s.exit)
	s.resolver = resolver.New(env, cfg, logger)
	s.runner = executor.New(env,
		executor.WithStdio(childStdin, stdout, stderr),
		executor.WithExecFailureCode(cfg.ExecFailureCode),
		executor.WithLogger(logger),
	)
	return s, nil
}

func (s *Shell) Run() error {
	for !s.exiting {
		fmt.Fprint(s.stdout, s.cfg.Prompt)
		if f, ok := s.stdout.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}

		line, err := s.lines.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Printf("read: %v", err)
			}
			fmt.Fprintln(s.stdout)
			return nil
		}

		s.Execute(line)
	}
	return nil
}

func (s *Shell) Execute(line string) {
	tokens := parser.Tokenize(line, s.cfg.MaxArgs)
	if s.builtins.Handle(tokens) {
		return
	}

	path, ok := s.resolver.Resolve(tokens[0])
	if !ok {
		fmt.Fprintf(s.stdout, "[%s]: Unknown Command\n", tokens[0])
		return
	}

	outcome, err := s.runner.Run(path, tokens)

	var (
		spawnErr *executor.SpawnError
		waitErr  *executor.WaitError
	)
	switch {
	case errors.As(err, &spawnErr):
		fmt.Fprintf(s.stderr, "fork: %s\n", sysenv.Strerror(spawnErr))
	case errors.As(err, &waitErr):
		fmt.Fprintf(s.stderr, "waitpid: %s\n", sysenv.Strerror(waitErr))
	case err != nil:
		fmt.Fprintf(s.stderr, "%s: %v\n", tokens[0], err)
	default:
		if err := executor.Report(s.stdout, outcome); err != nil {
			s.logger.Printf("report: %v", err)
		}
	}
}

// exit ends the loop after the current line. The interpreter always leaves
// with status 0, so the code is only traced.
func (s *Shell) exit(code int) {
	s.logger.Printf("exit %d", code)
	s.exiting = true
}

// Run starts an interactive shell on the process's own streams.
func Run() error {
	s, err := New(config.Default(), sysenv.OS{}, os.Stdin, os.Stdout, os.Stderr, nil)
	if err != nil {
		return err
	}
	return s.Run()
}
