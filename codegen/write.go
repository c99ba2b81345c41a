package codegen

import (
	"os"
	"path/filepath"

	"github.com/teranos/ontogen/am"
	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

// WriteFiles writes generated files under dir, creating directories as
// needed. Files whose content is already identical are left untouched so
// their modification times survive. It returns the paths that changed.
func WriteFiles(dir string, files []GeneratedFile) ([]string, error) {
	var written []string
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))

		if existing, err := os.ReadFile(target); err == nil && string(existing) == f.Content {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), am.DefaultDirPermissions); err != nil {
			return written, errors.Wrapf(err, "failed to create directory for %s", f.Path)
		}
		if err := os.WriteFile(target, []byte(f.Content), am.DefaultFilePermissions); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", target)
		}
		logger.Debugw("Wrote file",
			logger.FieldFile, target,
			logger.FieldBytes, len(f.Content))
		written = append(written, f.Path)
	}
	return written, nil
}
