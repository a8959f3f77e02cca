package receive

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineSource yields input lines. ReadLine returns io.EOF when input ends.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// ScannerSource reads lines from an io.Reader.
type ScannerSource struct {
	scanner *bufio.Scanner
}

// maxLineLength bounds a single input line. Bulk dumps arrive as one line.
const maxLineLength = 4 << 20

// NewScannerSource creates a LineSource over r.
func NewScannerSource(r io.Reader) *ScannerSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &ScannerSource{scanner: s}
}

// ReadLine returns the next line without its newline.
func (s *ScannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close is a no-op; the caller owns the reader.
func (s *ScannerSource) Close() error { return nil }

// PromptSource reads lines interactively with a readline prompt.
type PromptSource struct {
	rl *readline.Instance
}

// NewPromptSource creates an interactive LineSource.
func NewPromptSource(prompt string) (*PromptSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &PromptSource{rl: rl}, nil
}

// ReadLine reads one line. An interrupt on an empty line ends input.
func (p *PromptSource) ReadLine() (string, error) {
	line, err := p.rl.Readline()
	if err == readline.ErrInterrupt {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

// Stdout returns a writer that coordinates with the prompt.
func (p *PromptSource) Stdout() io.Writer {
	return p.rl.Stdout()
}

// Close releases the terminal.
func (p *PromptSource) Close() error {
	return p.rl.Close()
}
