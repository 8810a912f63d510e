package testhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFiles creates the files under a new temporary directory and returns the directory.
// Keys are slash separated paths relative to the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}

		err = os.WriteFile(path, []byte(content), 0o644)
		if err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return dir
}

// WriteSources is WriteFiles for source fixtures written as indented raw
// strings: content starting with a line break goes through TrimIndent first
func WriteSources(t *testing.T, files map[string]string) string {
	t.Helper()

	trimmed := make(map[string]string, len(files))

	for name, content := range files {
		if strings.HasPrefix(content, "\n") {
			content = TrimIndent(t, content)
		}

		trimmed[name] = content
	}

	return WriteFiles(t, trimmed)
}
