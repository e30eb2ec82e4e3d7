package combine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"treekit/pkg/elapsed"
)

// Result summarizes a completed aggregation run.
type Result struct {
	Output    string // Final destination path.
	Processed int    // Files written (including those replaced by error markers).
	Excluded  int    // Files rejected by the exclusion policy.
}

// Run executes the aggregation pipeline: resolve paths, scan the tree, filter
// the records and write the combined document. The pipeline is a single
// synchronous pass; only path resolution failures halt it. A declined
// overwrite confirmation surfaces as ErrUserAborted before any mutation.
func Run(opts Options, confirm ConfirmFunc, logger *zap.Logger) (Result, error) {
	startTime := time.Now()
	if confirm == nil {
		confirm = PromptOverwrite
	}

	source, err := ResolveSource(opts.Source)
	if err != nil {
		return Result{}, err
	}

	dest, err := ResolveOutput(opts.Output, opts.AddTimestamp, opts.Force, startTime, confirm, logger)
	if err != nil {
		return Result{}, err
	}

	logger.Info("Starting aggregation",
		zap.String("source", source),
		zap.String("output", dest),
		zap.String("style", opts.Style.String()))

	records, err := Scan(source, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to scan %s: %w", source, err)
	}

	rules := NewRules(opts.ExcludeDirs, opts.IncludeDotFiles, opts.IncludeBinaryFiles)
	accepted, excluded := Filter(records, rules, logger)

	fmt.Printf("Processing %d files\n", len(accepted))

	processed, err := WriteAll(dest, accepted, opts.Style, logger)
	if err != nil {
		return Result{Output: dest, Processed: processed, Excluded: excluded}, err
	}

	if opts.Clipboard {
		if err := copyToClipboard(dest); err != nil {
			logger.Warn("Failed to copy output to clipboard", zap.Error(err))
		} else {
			fmt.Println("Output copied to clipboard.")
		}
	}

	logger.Info("Aggregation complete",
		zap.Int("processed", processed),
		zap.Int("excluded", excluded),
		zap.String("output", dest))
	fmt.Println(elapsed.Format(time.Since(startTime), "Aggregation"))

	return Result{Output: dest, Processed: processed, Excluded: excluded}, nil
}

// IsUserAborted reports whether err is the declined-confirmation outcome.
func IsUserAborted(err error) bool {
	return errors.Is(err, ErrUserAborted)
}

func copyToClipboard(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(content))
}
