package noargio

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// QuestionOptions configures one Question call.
type QuestionOptions struct {
	// DefaultInput is returned when the user submits an empty line.
	DefaultInput string
}

// Prompter reads one line of user input after writing a prompt. Question blocks until
// a line is available.
type Prompter interface {
	Question(prompt string, opts QuestionOptions) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(prompt string, opts QuestionOptions) (string, error)

// Question calls f.
func (f PrompterFunc) Question(prompt string, opts QuestionOptions) (string, error) {
	return f(prompt, opts)
}

// LinePrompter is the default Prompter: it writes the prompt to the manager's output
// and reads a newline-terminated answer from its input.
type LinePrompter struct {
	io *IOManager
}

// NewPrompter returns a LinePrompter bound to m.
func NewPrompter(m *IOManager) *LinePrompter { return &LinePrompter{io: m} }

// Question writes prompt and returns the answer without its line terminator. A final
// line without a newline is still returned; io.ErrUnexpectedEOF is returned once the
// input is exhausted.
func (p *LinePrompter) Question(prompt string, opts QuestionOptions) (string, error) {
	if opts.DefaultInput != "" {
		prompt += p.io.Faint("("+opts.DefaultInput+") ")
	}
	if _, err := fmt.Fprint(p.io.Out(), prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.io.lineReader().ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return opts.DefaultInput, nil
	}
	return line, nil
}
