package noarg

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	noargio "github.com/dzonerzy/go-noarg/io"
	"github.com/dzonerzy/go-noarg/schema"
)

func positionalProgram() *Program {
	p, _ := newTestProgram("copy")
	return p.Argument("src", nil, "source").
		Argument("count", schema.NewNumber(), "copies").
		OptionalArgument("mode", schema.NewString().ToCase(schema.Lower), "").
		OptionalArgument("level", nil, "")
}

func TestParsePositional(t *testing.T) {
	t.Parallel()

	p := positionalProgram()
	out, err := p.Parse([]string{"a.txt", "3"})
	require.NoError(t, err)
	want := &Output{
		Flags:    map[string]any{},
		Args:     []any{"a.txt", 3.0},
		OptArgs:  []any{nil, nil},
		ListArgs: []any{},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, err = p.Parse([]string{"a.txt", "3", "FAST", "2", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, []any{"fast", "2"}, out.OptArgs)
	v, ok := out.OptArg(0)
	assert.True(t, ok)
	assert.Equal(t, "fast", v)

	out, err = p.Parse([]string{"a.txt", "3", "fast"})
	require.NoError(t, err)
	_, ok = out.OptArg(1)
	assert.False(t, ok)
}

func TestParsePositionalErrors(t *testing.T) {
	t.Parallel()

	p := positionalProgram()
	_, err := p.Parse(nil)
	require.ErrorIs(t, err, ErrArgumentCount)
	assert.EqualError(t, err, "Expected 2 arguments, missing: 2, [src, count]")

	_, err = p.Parse([]string{"a.txt"})
	assert.EqualError(t, err, "Expected 2 arguments, missing: 1, [count]")

	_, err = p.Parse([]string{"a.txt", "many"})
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.EqualError(t, err, "`many` is not a valid number for argument: count")

	_, err = p.Parse([]string{"a.txt", "--count", "3"})
	assert.ErrorIs(t, err, ErrArgumentCount)
}

func TestParseListArgument(t *testing.T) {
	t.Parallel()

	p, _ := newTestProgram("cat")
	p.Argument("out", nil, "").ListArgument("files", schema.NewString(), "", 1, 2)

	_, err := p.Parse([]string{"x"})
	assert.EqualError(t, err, "Minimum 1 items expected for list argument: files")

	out, err := p.Parse([]string{"x", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, out.ListArgs)

	_, err = p.Parse([]string{"x", "a", "b", "c"})
	assert.EqualError(t, err, "Maximum 2 items expected for list argument: files")

	nums, _ := newTestProgram("sum")
	nums.ListArgument("values", schema.NewNumber(), "", 0, 0)
	_, err = nums.Parse([]string{"1", "two"})
	assert.EqualError(t, err, "`two` is not a valid number for list argument: values")

	out, err = nums.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, out.ListArgs)
}

func TestParseFallbacks(t *testing.T) {
	t.Parallel()

	p, _ := newTestProgram("srv")
	p.Flag("port", schema.NewNumber().Default(8080)).
		Flag("token", schema.NewString().Required()).
		Flag("label", schema.NewString())

	_, err := p.Parse(nil)
	require.ErrorIs(t, err, ErrMissingRequired)
	assert.EqualError(t, err, "Option --token is required")

	out, err := p.Parse([]string{"--token", "t"})
	require.NoError(t, err)
	assert.Equal(t, 8080.0, out.MustGetNumber("port", 0))
	assert.False(t, out.Has("label"))
	assert.Equal(t, "fallback", out.MustGetString("label", "fallback"))
}

func TestParseIdempotent(t *testing.T) {
	t.Parallel()

	p, _ := flagProgram()
	p.Argument("target", nil, "")
	args := []string{"t", "--tags", "a", "b", "--count=2", "-v"}

	first, err := p.Parse(args)
	require.NoError(t, err)
	second, err := p.Parse(args)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated parse differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, []string{"t", "--tags", "a", "b", "--count=2", "-v"}, args)
}

func TestParseListDefaultNotShared(t *testing.T) {
	t.Parallel()

	p, _ := newTestProgram("app")
	p.Flag("tags", schema.NewArray(schema.NewString()).Default([]any{"a", "b"}))

	first, err := p.Parse(nil)
	require.NoError(t, err)
	tags, ok := first.Flags["tags"].([]any)
	require.True(t, ok)
	tags[0] = "changed"

	second, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, second.Flags["tags"])
}

func TestSubPrograms(t *testing.T) {
	t.Parallel()

	root, _ := newTestProgram("app")
	sys := DefaultSystem()
	sys.AllowEqualAssign = false
	root.System(sys).
		GlobalFlag("debug", schema.NewBoolean().Aliases("d")).
		Flag("root-only", schema.NewString())

	var got *Output
	serve := root.Program("serve", "run the server").
		Flag("port", schema.NewNumber()).
		Action(func(_ context.Context, out *Output) error {
			got = out
			return nil
		})

	out, err := root.Parse([]string{"serve", "--port", "80", "-d"})
	assert.Nil(t, out)
	require.ErrorIs(t, err, ErrDelegated)
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{"port": 80.0, "debug": true}, got.Flags)

	_, err = root.Parse([]string{"serve", "--root-only", "x"})
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = root.Parse([]string{"serve", "--port=80"})
	assert.ErrorIs(t, err, ErrEqualAssignDisabled)

	out, err = root.Parse([]string{"--root-only", "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", out.MustGetString("root-only", ""))

	assert.Equal(t, "app serve", serve.Path())
	assert.Same(t, root, serve.Parent())
	sub, ok := root.Lookup("serve")
	require.True(t, ok)
	assert.Same(t, serve, sub)
}

func TestSubProgramOverridesGlobal(t *testing.T) {
	t.Parallel()

	root, _ := newTestProgram("app")
	root.GlobalFlag("level", schema.NewNumber()).GlobalFlag("quiet", schema.NewBoolean())
	sub := root.Program("run", "").Flag("level", schema.NewString().Enum("low", "high"))

	flags := sub.Flags()
	require.Len(t, flags, 2)
	assert.Equal(t, "level", flags[0].Name)
	assert.Equal(t, schema.KindString, flags[0].Schema.Kind())
	assert.False(t, flags[0].Global)
	assert.Equal(t, "quiet", flags[1].Name)

	out, err := sub.Parse([]string{"--level", "high"})
	require.NoError(t, err)
	assert.Equal(t, "high", out.MustGetString("level", ""))
}

func TestSubProgramErrorPropagates(t *testing.T) {
	t.Parallel()

	root, _ := newTestProgram("app")
	boom := errors.New("boom")
	root.Program("fail", "").Action(func(context.Context, *Output) error { return boom })

	err := root.Start([]string{"fail"})
	assert.ErrorIs(t, err, boom)
	_, err = root.Parse([]string{"fail"})
	assert.ErrorIs(t, err, boom)
}

func TestStartRunsAction(t *testing.T) {
	t.Parallel()

	p, _ := newTestProgram("greet")
	var name string
	p.Argument("name", schema.NewString(), "").Action(func(_ context.Context, out *Output) error {
		name = out.Args[0].(string)
		return nil
	})
	require.NoError(t, p.Start([]string{" bob "}))
	assert.Equal(t, "bob", name)

	assert.NoError(t, New("bare", "").Start(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.RunWithArgs(ctx, []string{"x"}), context.Canceled)
}

func TestRunReportsErrors(t *testing.T) {
	t.Parallel()

	p, tio := flagProgram()
	err := p.RunWithArgs(context.Background(), []string{"--nmae", "x"})
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, tio.err.String(), "[ERROR] Unknown option --nmae entered. Did you mean --name?")
	assert.Contains(t, tio.out.String(), "Run 'app --help' for usage.")

	assert.NoError(t, p.RunWithArgs(context.Background(), []string{"--help"}))
}

func TestTrace(t *testing.T) {
	t.Parallel()

	p, tio := flagProgram()
	p.Trace(true)
	_, err := p.Parse([]string{"--name", "x"})
	require.NoError(t, err)
	assert.Contains(t, tio.out.String(), "[DEBUG] app: aggregate \"--name\": idle -> pending (name)")
	assert.Contains(t, tio.out.String(), "pending -> collecting")

	q, tio := flagProgram()
	_, err = q.Parse([]string{"--name", "x"})
	require.NoError(t, err)
	assert.Empty(t, tio.out.String())
}

func TestSubProgramSettingsAreSnapshots(t *testing.T) {
	t.Parallel()

	root, tio := newTestProgram("app")
	child := root.Program("serve", "").Flag("port", schema.NewNumber())
	child.Trace(true)
	assert.True(t, child.Logger().Enabled(noargio.LevelDebug))
	assert.False(t, root.Logger().Enabled(noargio.LevelDebug))

	_, err := child.Parse([]string{"--port", "1"})
	require.NoError(t, err)
	assert.Contains(t, tio.out.String(), "[DEBUG] app serve: aggregate")

	other := noargio.New().WithOut(&bytes.Buffer{}).NoColor()
	root.WithIO(other)
	assert.Same(t, other, root.IO())
	assert.NotSame(t, other, child.IO())
	assert.Same(t, other, root.Program("late", "").IO())
}

func TestInvalidNamesPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New("bad name", "") })
	assert.Panics(t, func() { New("app", "").Flag("--x", schema.NewBoolean()) })
	assert.Panics(t, func() { New("app", "").Argument("", nil, "") })
}
