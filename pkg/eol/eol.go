// Package eol rewrites CRLF line endings to LF across a directory tree.
package eol

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var crlf = []byte("\r\n")

// Normalize walks root and rewrites CRLF line endings to LF in every file
// whose extension is in exts. With dryRun set, files are only counted. The
// returned count is the number of files that contain (or would have
// contained) CRLF sequences.
func Normalize(root string, exts []string, dryRun bool, logger *zap.Logger) (int, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return 0, fmt.Errorf("failed to access %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", absRoot)
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	var files []string
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(allowed) > 0 && !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	return convertConcurrently(files, dryRun, logger), nil
}

// convertConcurrently probes and rewrites files on a small worker pool. The
// per-file work is order-independent, only the total count matters.
func convertConcurrently(files []string, dryRun bool, logger *zap.Logger) int {
	jobs := make(chan string, len(files))
	results := make(chan bool, len(files))
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				results <- convertFile(file, dryRun, logger)
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	count := 0
	for converted := range results {
		if converted {
			count++
		}
	}
	return count
}

// convertFile reports whether the file contained CRLF, rewriting it in place
// unless dryRun is set.
func convertFile(path string, dryRun bool, logger *zap.Logger) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("file", path), zap.Error(err))
		return false
	}
	if !bytes.Contains(content, crlf) {
		return false
	}
	if dryRun {
		logger.Debug("Would convert file", zap.String("file", path))
		return true
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat file", zap.String("file", path), zap.Error(err))
		return false
	}
	converted := bytes.ReplaceAll(content, crlf, []byte("\n"))
	if err := os.WriteFile(path, converted, info.Mode().Perm()); err != nil {
		logger.Warn("Failed to rewrite file", zap.String("file", path), zap.Error(err))
		return false
	}
	logger.Debug("Converted file", zap.String("file", path))
	return true
}
