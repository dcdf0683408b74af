package noarg

import (
	"bytes"
	"io"
	"strings"

	noargio "github.com/dzonerzy/go-noarg/io"
)

type testIO struct {
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestProgram(name string) (*Program, testIO) {
	tio := testIO{out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	m := noargio.New().WithIn(strings.NewReader("")).WithOut(tio.out).WithErr(tio.err).NoColor()
	return New(name, "test program").WithIO(m), tio
}

// script answers questions in order. An empty answer yields the default input, and
// running out of answers fails like a closed terminal.
type script struct {
	answers []string
	prompts []string
}

func (s *script) Question(prompt string, opts noargio.QuestionOptions) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a == "" {
		return opts.DefaultInput, nil
	}
	return a, nil
}
