package combine

// Options holds the configuration for one aggregation run.
type Options struct {
	Source             string   // Root directory to aggregate.
	Output             string   // Destination path for the combined document.
	Force              bool     // Overwrite an existing destination without asking.
	AddTimestamp       bool     // Suffix the destination filename with the capture time.
	ExcludeDirs        []string // Additional directory names to exclude, unioned with the defaults.
	IncludeDotFiles    bool     // Keep files whose name starts with a period.
	IncludeBinaryFiles bool     // Keep files with a known binary extension.
	Style              Style    // Separator style written before each file's content.
	Clipboard          bool     // Copy the finished document to the system clipboard.
}
