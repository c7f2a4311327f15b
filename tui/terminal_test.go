package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWriterTerminal(t *testing.T) {
	assert.False(t, IsWriterTerminal(&bytes.Buffer{}))

	f, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsWriterTerminal(f))
}
