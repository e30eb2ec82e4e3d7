package combine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0 Bytes"},
		{"small", 10, "10 Bytes"},
		{"just under a KB", 1023, "1023 Bytes"},
		{"exactly one KB", 1024, "1.00 KB"},
		{"fractional KB", 1536, "1.50 KB"},
		{"exactly one MB", 1024 * 1024, "1.00 MB"},
		{"fractional MB", 3*1024*1024 + 512*1024, "3.50 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatSize(tt.n))
		})
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Style{
		"standard": StyleStandard,
		"detailed": StyleDetailed,
		"Markdown": StyleMarkdown,
		"":         StyleDetailed,
	} {
		got, err := ParseStyle(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseStyle("yaml")
	assert.Error(t, err)
}

func TestStyleOpen(t *testing.T) {
	t.Parallel()

	rec := FileRecord{
		RelativePath: "src/a.txt",
		SizeBytes:    10,
		ModifiedAt:   time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Extension:    ".txt",
	}

	standard := StyleStandard.Open(rec)
	assert.Contains(t, standard, "File: src/a.txt")
	assert.NotContains(t, standard, "Modified:")

	detailed := StyleDetailed.Open(rec)
	assert.Contains(t, detailed, "File: src/a.txt")
	assert.Contains(t, detailed, "Modified: 2025-03-14 09:26:53")
	assert.Contains(t, detailed, "Size: 10 Bytes")
	assert.Contains(t, detailed, "Extension: .txt")

	markdown := StyleMarkdown.Open(rec)
	assert.True(t, strings.HasPrefix(markdown, "## src/a.txt\n"))
	assert.True(t, strings.HasSuffix(markdown, "```\n"))
}

func TestStyleClose(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StyleStandard.Close())
	assert.Empty(t, StyleDetailed.Close())
	assert.Equal(t, "```\n", StyleMarkdown.Close())
}

func TestExtensionLabel(t *testing.T) {
	t.Parallel()

	rec := FileRecord{RelativePath: "Makefile", Extension: ""}
	assert.Contains(t, StyleDetailed.Open(rec), "Extension: (no extension)")
}
