package combine

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const timestampLayout = "20060102_150405"

// ConfirmFunc asks the user whether an existing destination may be
// overwritten. It returns true to proceed.
type ConfirmFunc func(path string) (bool, error)

// PromptOverwrite is the interactive ConfirmFunc used by the CLI. It reads a
// y/n answer from stdin.
func PromptOverwrite(path string) (bool, error) {
	return promptUser(fmt.Sprintf("Output file %s already exists. Overwrite? (y/n): ", path))
}

// promptUser displays a message and waits for the user to enter 'y' or 'n'.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(message string) (bool, error) {
	fmt.Print(message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// ResolveSource resolves the source argument to an absolute path and
// validates that it is an existing directory.
func ResolveSource(source string) (string, error) {
	absPath, err := filepath.Abs(source)
	if err != nil {
		return "", &PathError{Op: "resolve source", Path: source, Err: err}
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", &PathError{Op: "resolve source", Path: absPath, Err: err}
	}
	if !info.IsDir() {
		return "", &PathError{Op: "resolve source", Path: absPath, Err: errors.New("not a directory")}
	}
	return absPath, nil
}

// ResolveOutput computes the final destination path and prepares it for
// writing. With addTimestamp the capture time is inserted immediately before
// the file extension. An existing destination is deleted when force is set;
// otherwise confirm is asked — declining returns ErrUserAborted with no
// mutation performed, accepting deletes the old file the same way the force
// branch does. The destination's parent directory is created if necessary.
func ResolveOutput(output string, addTimestamp, force bool, now time.Time, confirm ConfirmFunc, logger *zap.Logger) (string, error) {
	absPath, err := filepath.Abs(output)
	if err != nil {
		return "", &PathError{Op: "resolve output", Path: output, Err: err}
	}

	if addTimestamp {
		ext := filepath.Ext(absPath)
		absPath = strings.TrimSuffix(absPath, ext) + "_" + now.Format(timestampLayout) + ext
		logger.Debug("Timestamped output path", zap.String("path", absPath))
	}

	if info, statErr := os.Stat(absPath); statErr == nil {
		if info.IsDir() {
			return "", &PathError{Op: "resolve output", Path: absPath, Err: errors.New("is a directory")}
		}
		if force {
			if err := os.Remove(absPath); err != nil {
				return "", &PathError{Op: "remove existing output", Path: absPath, Err: err}
			}
			logger.Debug("Removed existing output file", zap.String("path", absPath))
		} else {
			ok, err := confirm(absPath)
			if err != nil {
				return "", fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				return "", ErrUserAborted
			}
			// Remove the old file now, like the force branch, so a
			// destination inside the source tree never reaches the scanner.
			if err := os.Remove(absPath); err != nil {
				return "", &PathError{Op: "remove existing output", Path: absPath, Err: err}
			}
			logger.Debug("Removed existing output file after confirmation", zap.String("path", absPath))
		}
	}

	if err := os.MkdirAll(filepath.Dir(absPath), os.ModePerm); err != nil {
		return "", &PathError{Op: "create output directory", Path: filepath.Dir(absPath), Err: err}
	}

	return absPath, nil
}
