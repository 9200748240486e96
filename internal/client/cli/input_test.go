package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  hello \n"))

	got, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetMultiline(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(r, "Enter bio", out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }

	out := &bytes.Buffer{}
	got, err := GetPassword(out)
	require.NoError(t, err)
	require.Equal(t, "secret123", got)
	require.Contains(t, out.String(), "Enter password")
}
