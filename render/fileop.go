package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// save writes dest through a temporary file in the same folder, renaming it
// into place only once write succeeded and the data reached the disk.
func save(dest string, write func(io.Writer) error) (err error) {
	dir, name := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	tmpName := outFile.Name()
	slog.Debug("writing", "file", dest, "tmp", tmpName)

	canRename := false
	defer func() {
		if !canRename {
			if closeErr := outFile.Close(); closeErr != nil {
				slog.Error("could not close temporary destination", "name", tmpName, "error", closeErr)
			}
			if rmErr := os.Remove(tmpName); rmErr != nil {
				slog.Error("could not remove temporary destination", "name", tmpName, "error", rmErr)
			}
			return
		}

		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", tmpName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", tmpName, defErr)
		}
		if err != nil {
			_ = os.Remove(tmpName)
			return
		}
		if defErr := os.Chmod(tmpName, 0o644); defErr != nil {
			slog.Warn("could not set permissions", "name", tmpName, "error", defErr)
		}
		if defErr := os.Rename(tmpName, dest); defErr != nil {
			err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
		}
	}()

	if err = write(outFile); err != nil {
		return fmt.Errorf("could not write %q: %w", dest, err)
	}

	canRename = true
	return nil
}
