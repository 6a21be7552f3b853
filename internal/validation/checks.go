package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CheckFileExists verifies a regular file exists at path.
func CheckFileExists(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("path %s does not exist", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}

	return nil
}
