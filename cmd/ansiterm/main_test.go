package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ansiterm/terminal"
)

// newFileTerminal returns a Terminal whose streams are a regular file, and the file path
func newFileTerminal(t *testing.T) (*terminal.Terminal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	term, err := terminal.New(terminal.WithStreams(f, f))
	require.NoError(t, err)
	return term, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
