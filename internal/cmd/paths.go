package cmd

import (
	"os"
	"path/filepath"
	"strings"
)

// canonicalPath expands environment variables and a leading tilde, then
// makes the path absolute.
func canonicalPath(path string) (string, error) {
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	return filepath.Abs(path)
}
