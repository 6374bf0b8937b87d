// Package tokenreader reads lines of whitespace-separated token text for
// cmd/canonlrdemo, in the direct-vs-interactive dual-reader split of
// tunaq's internal/input: a DirectReader for piped/non-TTY input and an
// InteractiveReader backed by github.com/chzyer/readline for a TTY,
// retargeted from reading game commands to reading parser input lines.
package tokenreader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader reads one line of input at a time, blocking until a non-blank line
// is available or the stream is exhausted.
type Reader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectReader reads lines from any io.Reader, trimmed of surrounding
// whitespace, skipping blank lines. Used for piped
// input and any run where --direct is passed or stdin is not a TTY.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps r for line-at-a-time reading.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next non-blank line, io.EOF when the stream is
// exhausted.
func (d *DirectReader) ReadLine() (string, error) {
	for {
		line, err := d.r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Close is a no-op: DirectReader owns no resources beyond the wrapped
// io.Reader, which its caller owns.
func (d *DirectReader) Close() error { return nil }

// InteractiveReader reads lines from a TTY via readline, giving history and
// line editing.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session with the given prompt.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline session: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine returns the next non-blank line, or readline's error unchanged
// once input is exhausted or interrupted (io.EOF or readline.ErrInterrupt).
func (i *InteractiveReader) ReadLine() (string, error) {
	for {
		line, err := i.rl.Readline()
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// SetPrompt updates the prompt shown for subsequent reads.
func (i *InteractiveReader) SetPrompt(p string) { i.rl.SetPrompt(p) }

// Close tears down the readline session.
func (i *InteractiveReader) Close() error { return i.rl.Close() }
