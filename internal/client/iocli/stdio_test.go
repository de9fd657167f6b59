package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_PrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

// Несколько вызовов ReadInput читают из одного буфера
func TestStream_ReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("first line\n  second  \nlast"), &out)

	got, err := s.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "first line", got)

	got, err = s.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = s.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = s.ReadInput("> ")
	assert.ErrorIs(t, err, ErrNoInput)

	assert.Equal(t, "> > > > ", out.String())
}

func TestStream_ReadSecretWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("token-value\n"), &out)

	got, err := s.ReadSecret("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
	assert.Equal(t, "Token: ", out.String())
}
