// Package elapsed formats time intervals as human-readable sentences.
package elapsed

import (
	"fmt"
	"strings"
	"time"
)

// Format renders d as a sentence, e.g. "Aggregation completed in 2 minutes
// 3 seconds". Sub-second intervals are reported in milliseconds.
func Format(d time.Duration, label string) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%s completed in %s", label, humanize(d))
}

func humanize(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%d milliseconds", d.Milliseconds())
	}

	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, plural(seconds, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
