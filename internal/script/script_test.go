package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianWangs/go-buffer/pkg/region"
)

func newInterpreter(t *testing.T, opts ...region.Option) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	r, err := region.New(opts...)
	require.NoError(t, err)
	var out bytes.Buffer
	return New(r, &out), &out
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   # only a comment", nil},
		{"append hello", []string{"append", "hello"}},
		{`append "two words" utf8`, []string{"append", "two words", "utf8"}},
		{"append `raw\\n`", []string{"append", `raw\n`}},
		{`fill '*' 0 1`, []string{"fill", "*", "0", "1"}},
		{`append "tab\there" # trailing`, []string{"append", "tab\there"}},
		{"append a#b", []string{"append", "a#b"}},
	}
	for _, tt := range tests {
		got, err := splitLine(tt.line)
		require.NoError(t, err, tt.line)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}

	for _, bad := range []string{`append "open`, `append "a"b`} {
		_, err := splitLine(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunSession(t *testing.T) {
	in, out := newInterpreter(t, region.WithCapacity(4), region.WithFill('.'))

	script := `
# build the content
append "hello"
appendhex 20776f726c64
text
indexof o
indexof o 5
lastindexof o
includes xyz
get 0
get 99
at -1
set 0 H
compare "Hello world"
equals Hello
write ! 11
text utf8 6
fill '*' 0 1
truncate 5
text
stats
reset
grow 100
`
	require.NoError(t, in.Run(context.Background(), strings.NewReader(script)))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	want := []string{
		"5", "6", `"hello world"`,
		"4", "7", "7", "false",
		"104", "undefined", "100",
		"ok", "0", "false",
		"1", `"world!"`,
		"ok", "ok", `"*ello"`,
	}
	if diff := cmp.Diff(want, lines[:len(want)]); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasPrefix(lines[18], "len=5 cap=13 (13 B)"), lines[18])
	assert.Contains(t, lines[18], "fill=46")
	assert.Equal(t, "ok", lines[19])
	assert.Equal(t, "100", lines[20])

	assert.Equal(t, 0, in.Region().Len())
	assert.Equal(t, 100, in.Region().Cap())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	in, out := newInterpreter(t)

	err := in.Run(context.Background(), strings.NewReader("append abc\n\nbogus 1\nappend never\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, ErrUnknownCommand, errors.Cause(err))
	assert.Equal(t, "3\n", out.String())
	assert.Equal(t, "abc", in.Region().String())
}

func TestRegionErrorsSurface(t *testing.T) {
	in, _ := newInterpreter(t, region.WithMaxLength(8))

	_, err := in.Exec("truncate 1")
	assert.True(t, region.IsRangeError(err))

	_, err = in.Exec("grow 9")
	assert.True(t, region.IsOverflowError(err))

	_, err = in.Exec("append x klingon")
	assert.True(t, region.IsTypeError(err))

	_, err = in.Exec("write x -1")
	assert.True(t, region.IsRangeError(err))

	_, err = in.Exec("fill 1 0 5")
	assert.True(t, region.IsRangeError(err))
}

func TestArgumentErrors(t *testing.T) {
	in, _ := newInterpreter(t)

	_, err := in.Exec("set 1")
	assert.ErrorContains(t, err, "usage: set INDEX BYTE")

	_, err = in.Exec("get nine")
	assert.ErrorContains(t, err, "bad integer")

	_, err = in.Exec("set 0 256")
	assert.ErrorContains(t, err, "bad byte")

	_, err = in.Exec("get 99999999999")
	assert.ErrorContains(t, err, "out of range")

	result, err := in.Exec("  # nothing")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	in, _ := newInterpreter(t)

	n, err := in.Exec("APPEND 00ff HEX")
	require.NoError(t, err)
	assert.Equal(t, "2", n)

	text, err := in.Exec("Text hex")
	require.NoError(t, err)
	assert.Equal(t, `"00ff"`, text)
}

func TestRunHonoursContext(t *testing.T) {
	in, out := newInterpreter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := in.Run(ctx, strings.NewReader("append a\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestCommandsListsUsage(t *testing.T) {
	usages := Commands()
	assert.Len(t, usages, len(commands))
	assert.Equal(t, "append TEXT [charset]", usages[0])
}
