package combine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func acceptAll(string) (bool, error)  { return true, nil }
func declineAll(string) (bool, error) { return false, nil }

func TestResolveSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	resolved, err := ResolveSource(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))

	_, err = ResolveSource(filepath.Join(dir, "missing"))
	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = ResolveSource(file)
	require.ErrorAs(t, err, &pathErr)
}

func TestResolveOutputTimestampSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	resolved, err := ResolveOutput(filepath.Join(dir, "out.txt"), true, false, now, acceptAll, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "out_20250314_092653.txt", filepath.Base(resolved))
}

func TestResolveOutputTimestampWithoutExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	resolved, err := ResolveOutput(filepath.Join(dir, "out"), true, false, now, acceptAll, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "out_20250314_092653", filepath.Base(resolved))
}

func TestResolveOutputCreatesParentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "deeper", "out.txt")

	resolved, err := ResolveOutput(target, false, false, time.Now(), acceptAll, zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(resolved))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveOutputDeclinedLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "out.txt")
	original := []byte("previous run content")
	require.NoError(t, os.WriteFile(existing, original, 0o644))

	_, err := ResolveOutput(existing, false, false, time.Now(), declineAll, zap.NewNop())
	require.True(t, errors.Is(err, ErrUserAborted))

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, original, content)
}

func TestResolveOutputForceRemovesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	resolved, err := ResolveOutput(existing, false, true, time.Now(), declineAll, zap.NewNop())
	require.NoError(t, err)

	_, statErr := os.Stat(resolved)
	assert.True(t, os.IsNotExist(statErr))
}

func TestResolveOutputConfirmedOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	asked := false
	confirm := func(path string) (bool, error) {
		asked = true
		assert.Equal(t, existing, path)
		return true, nil
	}

	resolved, err := ResolveOutput(existing, false, false, time.Now(), confirm, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, asked)
	assert.Equal(t, existing, resolved)

	// A confirmed overwrite removes the old file just like the force branch.
	_, statErr := os.Stat(resolved)
	assert.True(t, os.IsNotExist(statErr))
}
