package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Name?", &out)

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	assert.Error(t, err)
}

func TestGetRequiredText_Reprompts(t *testing.T) {
	var out bytes.Buffer

	got, err := GetRequiredText(readerFromLines("", "  ", "Go"), "Title", &out)

	require.NoError(t, err)
	assert.Equal(t, "Go", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Value is required"))
}

func TestGetOptionalText(t *testing.T) {
	tests := []struct {
		in   string
		want *string
	}{
		{"", nil},
		{"-", strptr("")},
		{"Kim", strptr("Kim")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetOptionalText(readerFromLines(tt.in), "First name", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPassword(t *testing.T) {
	withPassword(t, "s3cret")
	var out bytes.Buffer

	pw, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { readPassword = orig })

	_, err := GetPassword(&bytes.Buffer{})

	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
