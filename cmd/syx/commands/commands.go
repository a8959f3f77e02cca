// Package commands implements the syx CLI commands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/syxpack/syx-go/pkg/digest"
	"github.com/syxpack/syx-go/pkg/inspect"
	"github.com/syxpack/syx-go/pkg/log"
	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// ErrMultipleMessages is returned by commands that need a single-message file.
var ErrMultipleMessages = errors.New("more than one System Exclusive message found in file; use `syx split` to separate them")

// ErrNoMessages is returned when a file holds no complete message.
var ErrNoMessages = errors.New("no System Exclusive messages found")

// Env carries the settings shared by all commands.
type Env struct {
	Registry *manufacturer.Registry
	Digest   digest.Algorithm
	Policy   sysex.DanglingPolicy
	Logger   *slog.Logger
	Capture  log.Logger
}

func (e *Env) registry() *manufacturer.Registry {
	if e == nil || e.Registry == nil {
		return manufacturer.Default()
	}
	return e.Registry
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Env) session(command string) *log.Session {
	var capture log.Logger
	var alg digest.Algorithm
	if e != nil {
		capture = e.Capture
		alg = e.Digest
	}
	return log.NewSession(capture, command, e.registry(), alg)
}

func (e *Env) formatter() *inspect.Formatter {
	f := inspect.NewFormatter(e.registry())
	if e != nil {
		f.Digest = e.Digest
	}
	return f
}

func (e *Env) splitter() sysex.Splitter {
	if e == nil {
		return sysex.Splitter{}
	}
	return sysex.Splitter{Policy: e.Policy}
}

// input is a file split into its framed messages.
type input struct {
	path     string
	buf      []byte
	messages [][]byte
}

// readInput loads path and splits it under the env's dangling policy.
func (e *Env) readInput(s *log.Session, path string) (*input, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	messages, err := e.splitter().Split(buf)
	if err != nil {
		s.Error(path, "split", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMessages)
	}

	e.logger().Debug("read input", "path", path, "size", len(buf), "messages", len(messages))
	return &input{path: path, buf: buf, messages: messages}, nil
}

// single returns the only message of in, or ErrMultipleMessages.
func (in *input) single() ([]byte, error) {
	if len(in.messages) > 1 {
		return nil, ErrMultipleMessages
	}
	return in.messages[0], nil
}

// parse parses raw and records a parse failure in the session.
func parse(s *log.Session, source string, raw []byte) (sysex.Message, error) {
	m, err := sysex.Parse(raw)
	if err != nil {
		s.Error(source, "parse", err)
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return m, nil
}
