// Package config holds the fixed limits and strings of the interpreter.
package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPrompt          = "bash-mini$ "
	DefaultMaxLineBytes    = 1024
	DefaultMaxArgs         = 128
	DefaultSystemDir       = "/bin"
	DefaultHomeVar         = "HOME"
	DefaultExecFailureCode = 127
)

// Config describes the interpreter's bounds and search locations.
type Config struct {
	Prompt string `json:"prompt"`

	// MaxLineBytes bounds one input line, including its terminator.
	MaxLineBytes int `json:"max_line_bytes" validate:"gte=2"`

	// MaxArgs bounds the argument vector; one slot is reserved, so at most
	// MaxArgs-1 tokens are kept.
	MaxArgs int `json:"max_args" validate:"gte=2"`

	SystemDir string `json:"system_dir" validate:"required,startswith=/"`
	HomeVar   string `json:"home_var" validate:"required"`

	// ExecFailureCode is the exit status reported when a child could not
	// load its program.
	ExecFailureCode int `json:"exec_failure_code" validate:"gte=0,lte=255"`
}

// Default returns the interpreter's built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:          DefaultPrompt,
		MaxLineBytes:    DefaultMaxLineBytes,
		MaxArgs:         DefaultMaxArgs,
		SystemDir:       DefaultSystemDir,
		HomeVar:         DefaultHomeVar,
		ExecFailureCode: DefaultExecFailureCode,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}
