package combine

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileRecord is one filesystem entry discovered by the scanner. Records are
// created at discovery time and read-only afterward.
type FileRecord struct {
	AbsolutePath string    // Fully-resolved location on disk.
	RelativePath string    // Path relative to the source root, forward slashes.
	SizeBytes    int64
	ModifiedAt   time.Time
	Extension    string // Lower-cased, includes the leading period; empty for extensionless names.
}

// Scan walks root and emits a FileRecord for every non-directory entry it can
// reach. The scan itself does not filter: hidden entries are traversed and
// reported, and exclusion is entirely the filter's responsibility. Subtrees
// that cannot be entered are skipped, never fatal.
func Scan(root string, logger *zap.Logger) ([]FileRecord, error) {
	var records []FileRecord

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("Skipping inaccessible path during scan",
				zap.String("path", path),
				zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Debug("Failed to stat file during scan",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			logger.Debug("Unable to determine relative path, using absolute path",
				zap.String("path", path),
				zap.Error(err))
			relPath = path
		}

		records = append(records, FileRecord{
			AbsolutePath: path,
			RelativePath: filepath.ToSlash(relPath),
			SizeBytes:    info.Size(),
			ModifiedAt:   info.ModTime(),
			Extension:    strings.ToLower(filepath.Ext(path)),
		})
		return nil
	})
	if err != nil {
		return records, err
	}

	logger.Debug("Completed scan", zap.String("root", root), zap.Int("entries", len(records)))
	return records, nil
}
