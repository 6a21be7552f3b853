package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "fr.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: fr"), 0o644))

	require.NoError(t, CheckFileExists(file))
	require.Error(t, CheckFileExists(filepath.Join(dir, "missing.yaml")))
	require.Error(t, CheckFileExists(""))
}

func TestCheckFileExistsRejectsDirectory(t *testing.T) {
	t.Parallel()

	err := CheckFileExists(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}
