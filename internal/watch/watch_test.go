package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	other := filepath.Join(dir, "other.bin")
	for _, p := range []string{a, b, other} {
		require.NoError(t, os.WriteFile(p, []byte{0}, 0o644))
	}

	w, err := New([]string{a, b}, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { calls.Add(1) })
	}()

	for i := range 5 {
		require.NoError(t, os.WriteFile(a, []byte{byte(i)}, 0o644))
	}
	require.NoError(t, os.WriteFile(b, []byte{1}, 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst should collapse into one callback")

	require.NoError(t, os.WriteFile(other, []byte{9}, 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "unrelated file should not trigger")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunSeesRenameReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "golden.bin")
	require.NoError(t, os.WriteFile(target, []byte{0}, 0o644))

	w, err := New([]string{target}, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() { _ = w.Run(ctx, func() { calls.Add(1) }) }()

	tmp := filepath.Join(dir, "golden.bin.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte{1, 2}, 0o644))
	require.NoError(t, os.Rename(tmp, target))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "a.bin")}, 0)
	assert.Error(t, err)
}
