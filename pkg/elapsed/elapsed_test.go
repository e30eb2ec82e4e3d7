package elapsed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second", 250 * time.Millisecond, "Run completed in 250 milliseconds"},
		{"single second", time.Second, "Run completed in 1 second"},
		{"seconds", 42 * time.Second, "Run completed in 42 seconds"},
		{"minutes and seconds", 2*time.Minute + 3*time.Second, "Run completed in 2 minutes 3 seconds"},
		{"single minute", time.Minute, "Run completed in 1 minute"},
		{"hours", time.Hour + 5*time.Second, "Run completed in 1 hour 5 seconds"},
		{"full spread", time.Hour + time.Minute + time.Second, "Run completed in 1 hour 1 minute 1 second"},
		{"negative clamps to zero", -time.Second, "Run completed in 0 milliseconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.d, "Run"))
		})
	}
}

func TestFormatLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Aggregation completed in 3 seconds", Format(3*time.Second, "Aggregation"))
}
