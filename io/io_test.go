package noargio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFallbackWidth(t *testing.T) {
	t.Setenv("COLUMNS", "101")
	m := New().WithOut(&bytes.Buffer{})
	assert.Equal(t, 101, m.Width())

	t.Setenv("COLUMNS", "")
	assert.Equal(t, 80, m.Width())
}

func TestColorOverrides(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	m := New().WithOut(&bytes.Buffer{})
	assert.False(t, m.SupportsColor(), "buffers are not terminals")
	assert.True(t, m.ForceColor().SupportsColor())
	assert.False(t, m.NoColor().SupportsColor())

	t.Setenv("NO_COLOR", "1")
	assert.False(t, m.ColorAuto().ForceColor().SupportsColor())
}

func TestStyles(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	m := New().WithOut(&bytes.Buffer{}).ForceColor()

	out := NewStyle(color.Bold, color.FgHiBlue).Sprint(m, "x")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "x")

	assert.Equal(t, "x", NewStyle(color.Bold).Sprint(m.NoColor(), "x"))
	assert.Equal(t, "x", NewStyle().Sprint(m.ForceColor(), "x"))

	base := NewStyle(color.Bold)
	derived := base.Add(color.FgRed)
	assert.Len(t, base.attrs, 1)
	assert.Len(t, derived.attrs, 2)
}

func TestLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	log := NewLogger(m)

	log.Info("hello %s", "world")
	log.Error("bad")
	log.Debug("hidden")
	assert.Equal(t, "[INFO] hello world\n", out.String())
	assert.Equal(t, "[ERROR] bad\n", errOut.String())

	out.Reset()
	log.WithLevel(LevelDebug).WithFormat(LogFormatPlain).Debug("trace")
	assert.Equal(t, "trace\n", out.String())

	out.Reset()
	log.ErrorsToStderr(false).Warning("careful")
	assert.Equal(t, "careful\n", out.String())
	assert.True(t, log.Enabled(LevelDebug))

	clone := log.Clone().WithLevel(LevelError)
	assert.False(t, clone.Enabled(LevelDebug))
	assert.True(t, log.Enabled(LevelDebug))
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	m := New().WithIn(strings.NewReader("alice\n\r\n\nlast")).WithOut(&out).NoColor()
	p := NewPrompter(m)

	got, err := p.Question("name: ", QuestionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	got, err = p.Question("name: ", QuestionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = p.Question("city: ", QuestionOptions{DefaultInput: "Rome"})
	require.NoError(t, err)
	assert.Equal(t, "Rome", got)

	got, err = p.Question("x: ", QuestionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Question("y: ", QuestionOptions{})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.Equal(t, "name: name: city: (Rome) x: y: ", out.String())
}

func TestPrompterFunc(t *testing.T) {
	var p Prompter = PrompterFunc(func(prompt string, opts QuestionOptions) (string, error) {
		return prompt + opts.DefaultInput, nil
	})
	got, err := p.Question("a", QuestionOptions{DefaultInput: "b"})
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}
