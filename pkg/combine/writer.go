package combine

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
)

// WriteAll creates dest empty and appends one block per record, in relative-
// path order. Each block is the separator for the configured style, the
// file's content (or an inline error marker when the file cannot be read),
// the closing fence for markdown, and a trailing blank line. A per-file read
// failure never aborts the run; the file still counts as processed.
func WriteAll(dest string, records []FileRecord, style Style, logger *zap.Logger) (int, error) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].RelativePath < records[j].RelativePath
	})

	outFile, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, &PathError{Op: "create output file", Path: dest, Err: err}
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", dest), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	processed := 0

	for _, rec := range records {
		if _, err := writer.WriteString(style.Open(rec)); err != nil {
			return processed, fmt.Errorf("failed to write separator: %w", err)
		}
		if style != StyleMarkdown {
			if _, err := writer.WriteString("\n"); err != nil {
				return processed, fmt.Errorf("failed to write separator: %w", err)
			}
		}

		content, readErr := os.ReadFile(rec.AbsolutePath)
		if readErr != nil {
			logger.Warn("Failed to read file, writing inline error marker",
				zap.String("file", rec.AbsolutePath),
				zap.Error(readErr))
			content = []byte(fmt.Sprintf("[ERROR: %v]\n", readErr))
		}
		if _, err := writer.Write(content); err != nil {
			return processed, fmt.Errorf("failed to write content: %w", err)
		}
		// Content is emitted verbatim; only the markdown closing fence needs
		// to start on its own line.
		if style == StyleMarkdown && len(content) > 0 && content[len(content)-1] != '\n' {
			if _, err := writer.WriteString("\n"); err != nil {
				return processed, fmt.Errorf("failed to write content: %w", err)
			}
		}

		if _, err := writer.WriteString(style.Close()); err != nil {
			return processed, fmt.Errorf("failed to write closing fence: %w", err)
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return processed, fmt.Errorf("failed to write block separator: %w", err)
		}
		processed++
	}

	if err := writer.Flush(); err != nil {
		return processed, fmt.Errorf("failed to flush output: %w", err)
	}
	return processed, nil
}
