package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

func TestIsTranscriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lecture.txt", true},
		{"/in/lecture.SRT", true},
		{"captions.vtt", true},
		{"notes.md", true},
		{"lecture.url", false},
		{"video.mp4", false},
		{".lecture.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isTranscriptFile(tt.path), tt.path)
	}
}

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, filepath.Base(path))
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestWatcherHandlesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("t"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.url"), []byte("https://v"), 0644))

	rec := &recorder{}
	w, err := New(dir, rec.handle, logger.New("error"), 1)
	require.NoError(t, err)
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return len(rec.seen()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.srt"), []byte("t"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.mp4"), []byte("t"), 0644))

	assert.Eventually(t, func() bool {
		return len(rec.seen()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.ElementsMatch(t, []string{"existing.txt", "new.srt"}, rec.seen())
}

func TestNewFailsForMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(context.Context, string) error { return nil }, logger.New("error"), 1)
	assert.Error(t, err)
}
