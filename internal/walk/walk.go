// Package walk enumerates the regular files under a directory root.
//
// Traversal is queue-based rather than recursive, mirroring the breadth of
// the tree instead of its depth. Symlinks are resolved to their target type:
// a symlinked directory is traversed, a symlinked file is enumerated.
// Unreadable directories, unresolvable symlinks, and exotic entry types are
// logged and skipped; only a non-directory root refuses the whole run.
//
// Symlink cycles are not detected. A tree that links back into itself will
// loop; keeping such trees out of the root is the caller's responsibility.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"wordfreq/internal/logging"
)

// ErrNotDirectory marks the one fatal enumeration error: a root that is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// Files calls visit with the path of every regular file reachable from root,
// in directory-sorted order. Per-entry failures are warned on logger and
// skipped; the walk continues.
func Files(root string, logger *slog.Logger, visit func(path string)) error {
	if logger == nil {
		logger = logging.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	queue := []string{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn("cannot read directory",
				logging.String("path", dir),
				logging.Error(err),
			)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			mode := entry.Type()
			switch {
			case mode.IsDir():
				queue = append(queue, path)
			case mode.IsRegular():
				visit(path)
			case mode&fs.ModeSymlink != 0:
				target, err := os.Stat(path)
				if err != nil {
					logger.Warn("cannot resolve symlink",
						logging.String("path", path),
						logging.Error(err),
					)
					continue
				}
				switch {
				case target.IsDir():
					queue = append(queue, path)
				case target.Mode().IsRegular():
					visit(path)
				default:
					logger.Warn("symlink target is neither file nor directory",
						logging.String("path", path),
						logging.String("mode", target.Mode().String()),
					)
				}
			default:
				logger.Warn("skipping unsupported entry type",
					logging.String("path", path),
					logging.String("mode", mode.String()),
				)
			}
		}
	}
	return nil
}
