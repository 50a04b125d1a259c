// Package resolver maps a command name to the executable the interpreter
// will run.
//
// Only two locations are searched, in order: the directory named by the
// home variable, then the system directory. There is no PATH walk and no
// fallback to the working directory.
package resolver

import (
	"io"
	"log"

	"minibash/internal/config"
	"minibash/internal/sysenv"
)

// Resolver finds executables for command names.
type Resolver struct {
	env       sysenv.Env
	homeVar   string
	systemDir string
	logger    *log.Logger
}

// New creates a Resolver. A nil logger discards trace output.
func New(env sysenv.Env, cfg *config.Config, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{
		env:       env,
		homeVar:   cfg.HomeVar,
		systemDir: cfg.SystemDir,
		logger:    logger,
	}
}

// Candidates lists the paths checked for command, in search order. The home
// variable is read on every call.
func (r *Resolver) Candidates(command string) []string {
	var out []string
	if home, ok := r.env.LookupEnv(r.homeVar); ok {
		out = append(out, home+"/"+command)
	}
	return append(out, r.systemDir+"/"+command)
}

// Resolve returns the first candidate that exists and is executable by the
// current process. The path is returned as built, without cleaning.
func (r *Resolver) Resolve(command string) (string, bool) {
	for _, candidate := range r.Candidates(command) {
		err := r.env.Executable(candidate)
		if err == nil {
			return candidate, true
		}
		r.logger.Printf("resolve %q: skip %s: %v", command, candidate, err)
	}
	return "", false
}
