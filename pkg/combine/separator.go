package combine

import (
	"fmt"
	"strings"
)

// Style selects the separator written before each file's content. The set is
// fixed and exhaustively enumerable.
type Style int

const (
	StyleStandard Style = iota // Bare path banner.
	StyleDetailed              // Banner with modification date, size and extension.
	StyleMarkdown              // Heading, metadata line and a fenced code block.
)

const (
	bannerLine     = "================================================================================"
	modifiedLayout = "2006-01-02 15:04:05"
)

// ParseStyle maps a flag value to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return StyleStandard, nil
	case "detailed", "":
		return StyleDetailed, nil
	case "markdown":
		return StyleMarkdown, nil
	default:
		return StyleDetailed, fmt.Errorf("unknown separator style %q (expected standard, detailed or markdown)", s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleMarkdown:
		return "markdown"
	default:
		return "detailed"
	}
}

// Open renders the separator emitted before rec's content, ending with a
// newline. For StyleMarkdown the opening code fence is included.
func (s Style) Open(rec FileRecord) string {
	switch s {
	case StyleStandard:
		return fmt.Sprintf("%s\nFile: %s\n%s\n", bannerLine, rec.RelativePath, bannerLine)
	case StyleMarkdown:
		return fmt.Sprintf("## %s\n\n*Modified: %s | Size: %s | Extension: %s*\n\n```\n",
			rec.RelativePath,
			rec.ModifiedAt.Format(modifiedLayout),
			formatSize(rec.SizeBytes),
			extensionLabel(rec.Extension))
	default:
		return fmt.Sprintf("%s\nFile: %s\nModified: %s | Size: %s | Extension: %s\n%s\n",
			bannerLine,
			rec.RelativePath,
			rec.ModifiedAt.Format(modifiedLayout),
			formatSize(rec.SizeBytes),
			extensionLabel(rec.Extension),
			bannerLine)
	}
}

// Close renders the text emitted after a file's content. Only StyleMarkdown
// has a closing emission, the matching code fence.
func (s Style) Close() string {
	if s == StyleMarkdown {
		return "```\n"
	}
	return ""
}

// formatSize renders a byte count as Bytes, or KB/MB with two-decimal
// precision.
func formatSize(n int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d Bytes", n)
	}
}

func extensionLabel(ext string) string {
	if ext == "" {
		return "(no extension)"
	}
	return ext
}
