package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ConfirmFunc asks the user to approve the pending renames. It receives a
// preview of the planned changes and returns true to proceed.
type ConfirmFunc func(preview string) (bool, error)

// RenameAll translates the names of root's immediate subdirectories and
// renames them, gated by confirm. Directories whose translation equals the
// original name are left untouched. It returns the number of directories
// renamed; declining the confirmation returns 0 with no mutation.
func (c *Client) RenameAll(ctx context.Context, root, sourceLang, targetLang string, confirm ConfirmFunc, logger *zap.Logger) (int, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", absRoot, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		logger.Info("No subdirectories to translate", zap.String("root", absRoot))
		return 0, nil
	}

	translated, err := c.TranslateNames(ctx, names, sourceLang, targetLang)
	if err != nil {
		return 0, err
	}

	var preview string
	pending := 0
	for i, name := range names {
		if translated[i] == name || translated[i] == "" {
			continue
		}
		preview += fmt.Sprintf("  %s -> %s\n", name, translated[i])
		pending++
	}
	if pending == 0 {
		logger.Info("All directory names already match their translations")
		return 0, nil
	}

	ok, err := confirm(fmt.Sprintf("The following %d directories will be renamed:\n%s", pending, preview))
	if err != nil {
		return 0, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		logger.Info("User declined the rename pass")
		return 0, nil
	}

	renamed := 0
	for i, name := range names {
		if translated[i] == name || translated[i] == "" {
			continue
		}
		oldPath := filepath.Join(absRoot, name)
		newPath := filepath.Join(absRoot, translated[i])
		if _, err := os.Stat(newPath); err == nil {
			logger.Warn("Skipping rename, target already exists",
				zap.String("from", oldPath),
				zap.String("to", newPath))
			continue
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			logger.Warn("Failed to rename directory",
				zap.String("from", oldPath),
				zap.String("to", newPath),
				zap.Error(err))
			continue
		}
		logger.Debug("Renamed directory", zap.String("from", oldPath), zap.String("to", newPath))
		renamed++
	}
	return renamed, nil
}
