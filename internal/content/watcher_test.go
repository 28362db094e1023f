package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeBundleFile(t *testing.T, path string, b Bundle) {
	t.Helper()
	data, err := Marshal(b)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "content.yaml")
	writeBundleFile(t, path, testBundle())

	loader := NewLoader(storage.NewOSStore(), path)
	initial, err := loader.Load(context.Background())
	require.NoError(t, err)
	holder := NewHolder(initial)

	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan Reloaded, 4)
	require.NoError(t, pubsub.Subscribe(ctx, bridge, ReloadedEvent, func(ctx context.Context, r Reloaded) error {
		reloaded <- r
		return nil
	}))

	w := NewWatcher(loader, holder, bridge)
	w.debounce = 10 * time.Millisecond
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	t.Run("valid change is swapped in and announced", func(t *testing.T) {
		b := testBundle()
		b.Version = "v2"
		writeBundleFile(t, path, b)

		assert.Eventually(t, func() bool {
			return holder.Current().Version() == "v2"
		}, 3*time.Second, 20*time.Millisecond)

		select {
		case r := <-reloaded:
			assert.Equal(t, "v2", r.Version)
			assert.Equal(t, path, r.Path)
		case <-time.After(3 * time.Second):
			t.Fatal("no reload event published")
		}
	})

	t.Run("invalid change keeps the previous store", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("version: [broken"), 0644))

		time.Sleep(300 * time.Millisecond)
		assert.Equal(t, "v2", holder.Current().Version())
	})

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_ReloadWithoutPublisher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	b := testBundle()
	writeBundleFile(t, path, b)

	loader := NewLoader(storage.NewOSStore(), path)
	holder := NewHolder(nil)
	w := NewWatcher(loader, holder, nil)

	require.NoError(t, w.Reload(context.Background()))
	require.NotNil(t, holder.Current())
	assert.Equal(t, "test", holder.Current().Version())
}
