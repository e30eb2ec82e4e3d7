package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"treekit/pkg/elapsed"
	"treekit/pkg/eol"
)

var eolOpts struct {
	path   string
	exts   []string
	dryRun bool
}

var eolCmd = &cobra.Command{
	Use:   "eol",
	Short: "Convert CRLF line endings to LF across a directory tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		count, err := eol.Normalize(eolOpts.path, eolOpts.exts, eolOpts.dryRun, logger)
		if err != nil {
			return err
		}

		if eolOpts.dryRun {
			fmt.Printf("%d files contain CRLF line endings (dry run, nothing modified)\n", count)
		} else {
			fmt.Printf("Converted %d files to LF line endings\n", count)
		}
		fmt.Println(elapsed.Format(time.Since(startTime), "Conversion"))
		return nil
	},
}

func init() {
	eolCmd.Flags().StringVarP(&eolOpts.path, "path", "p", ".", "Root directory to scan")
	eolCmd.Flags().StringSliceVar(&eolOpts.exts, "ext", nil, "File extensions to convert (comma-separated; empty means all files)")
	eolCmd.Flags().BoolVar(&eolOpts.dryRun, "dry-run", false, "Count files without modifying them")

	RootCmd.AddCommand(eolCmd)
}
