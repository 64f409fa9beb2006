package pool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer"
	"github.com/tyfind/tyfind/src/tyfind/gateway/analyzer/analyzermock"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRepository(t *testing.T, spawner analyzer.Spawner, maxWarm int) *repository {
	t.Helper()
	provider, err := config.NewYAML(config.Static(map[string]interface{}{
		"pool": map[string]interface{}{"maxWarmWorkspaces": maxWarm},
	}))
	require.NoError(t, err)

	repo, err := New(Params{
		Config:  provider,
		Spawner: spawner,
		Logger:  zap.NewNop().Sugar(),
		Stats:   tally.NoopScope,
	})
	require.NoError(t, err)
	return repo.(*repository)
}

func TestGetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("creates once and reuses", func(t *testing.T) {
		client := analyzermock.NewMockClient(ctrl)
		spawner := analyzermock.NewMockSpawner(ctrl)
		spawner.EXPECT().Spawn(gomock.Any(), "/tmp/ws", gomock.Any()).Return(client, nil).Times(1)

		repo := newTestRepository(t, spawner, 8)

		first, release1, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.NoError(t, err)
		release1()

		second, release2, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.NoError(t, err)
		release2()

		assert.Same(t, first, second)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("concurrent callers share one spawn", func(t *testing.T) {
		client := analyzermock.NewMockClient(ctrl)
		spawner := analyzermock.NewMockSpawner(ctrl)
		spawner.EXPECT().Spawn(gomock.Any(), "/tmp/ws", gomock.Any()).
			DoAndReturn(func(ctx context.Context, workspace string, onExit func()) (analyzer.Client, error) {
				time.Sleep(20 * time.Millisecond)
				return client, nil
			}).Times(1)

		repo := newTestRepository(t, spawner, 8)

		const callers = 8
		var wg sync.WaitGroup
		clients := make([]analyzer.Client, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, release, err := repo.GetOrCreate(ctx, "/tmp/ws")
				assert.NoError(t, err)
				clients[i] = c
				release()
			}(i)
		}
		wg.Wait()

		for _, c := range clients {
			assert.Same(t, client, c)
		}
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("spawn failure is not cached", func(t *testing.T) {
		client := analyzermock.NewMockClient(ctrl)
		spawner := analyzermock.NewMockSpawner(ctrl)
		gomock.InOrder(
			spawner.EXPECT().Spawn(gomock.Any(), "/tmp/ws", gomock.Any()).Return(nil, errors.New("spawn failed")),
			spawner.EXPECT().Spawn(gomock.Any(), "/tmp/ws", gomock.Any()).Return(client, nil),
		)

		repo := newTestRepository(t, spawner, 8)

		_, _, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.Error(t, err)
		assert.Equal(t, 0, repo.Count())

		got, release, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.NoError(t, err)
		release()
		assert.Same(t, client, got)
	})
}

func TestCleanupIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("evicts expired entries", func(t *testing.T) {
		client := analyzermock.NewMockClient(ctrl)
		client.EXPECT().Close(gomock.Any()).Return(nil).Times(1)
		spawner := analyzermock.NewMockSpawner(ctrl)
		spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any()).Return(client, nil)

		repo := newTestRepository(t, spawner, 8)
		_, release, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.NoError(t, err)
		release()

		// Nothing is old enough yet.
		assert.Equal(t, 0, repo.CleanupIdle(ctx, time.Minute))

		repo.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
		assert.Equal(t, 1, repo.CleanupIdle(ctx, time.Minute))
		assert.Equal(t, 0, repo.Count())
	})

	t.Run("skips entries with in-flight requests", func(t *testing.T) {
		client := analyzermock.NewMockClient(ctrl)
		spawner := analyzermock.NewMockSpawner(ctrl)
		spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any()).Return(client, nil)

		repo := newTestRepository(t, spawner, 8)
		_, release, err := repo.GetOrCreate(ctx, "/tmp/ws")
		require.NoError(t, err)

		repo.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
		assert.Equal(t, 0, repo.CleanupIdle(ctx, time.Minute))
		assert.Equal(t, 1, repo.Count())

		// Released entries become evictable on the next sweep. The release
		// itself refreshes last access, so advance the clock past it again.
		client.EXPECT().Close(gomock.Any()).Return(nil).Times(1)
		release()
		repo.now = func() time.Time { return time.Now().Add(20 * time.Minute) }
		assert.Equal(t, 1, repo.CleanupIdle(ctx, time.Minute))
	})
}

func TestEvict(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	client := analyzermock.NewMockClient(ctrl)
	client.EXPECT().Close(gomock.Any()).Return(nil).Times(1)
	spawner := analyzermock.NewMockSpawner(ctrl)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any()).Return(client, nil)

	repo := newTestRepository(t, spawner, 8)
	_, release, err := repo.GetOrCreate(ctx, "/tmp/ws")
	require.NoError(t, err)
	release()

	repo.Evict(ctx, "/tmp/ws")
	assert.Equal(t, 0, repo.Count())

	// Evicting a workspace that is not present is a no-op.
	repo.Evict(ctx, "/tmp/other")
}

func TestShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	clientA := analyzermock.NewMockClient(ctrl)
	clientA.EXPECT().Close(gomock.Any()).Return(nil).Times(1)
	clientB := analyzermock.NewMockClient(ctrl)
	clientB.EXPECT().Close(gomock.Any()).Return(nil).Times(1)

	spawner := analyzermock.NewMockSpawner(ctrl)
	spawner.EXPECT().Spawn(gomock.Any(), "/tmp/a", gomock.Any()).Return(clientA, nil)
	spawner.EXPECT().Spawn(gomock.Any(), "/tmp/b", gomock.Any()).Return(clientB, nil)

	repo := newTestRepository(t, spawner, 8)
	for _, ws := range []string{"/tmp/a", "/tmp/b"} {
		_, release, err := repo.GetOrCreate(ctx, ws)
		require.NoError(t, err)
		release()
	}
	assert.ElementsMatch(t, []string{"/tmp/a", "/tmp/b"}, repo.Workspaces())

	assert.NoError(t, repo.Shutdown(ctx))
	assert.Equal(t, 0, repo.Count())
}

func TestWarmCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	closed := make(chan struct{})
	clientA := analyzermock.NewMockClient(ctrl)
	clientA.EXPECT().Close(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(closed)
		return nil
	}).Times(1)
	clientB := analyzermock.NewMockClient(ctrl)

	spawner := analyzermock.NewMockSpawner(ctrl)
	spawner.EXPECT().Spawn(gomock.Any(), "/tmp/a", gomock.Any()).Return(clientA, nil)
	spawner.EXPECT().Spawn(gomock.Any(), "/tmp/b", gomock.Any()).Return(clientB, nil)

	repo := newTestRepository(t, spawner, 1)

	_, releaseA, err := repo.GetOrCreate(ctx, "/tmp/a")
	require.NoError(t, err)
	releaseA()

	_, releaseB, err := repo.GetOrCreate(ctx, "/tmp/b")
	require.NoError(t, err)
	releaseB()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("expected the least-recently-used entry to be evicted")
	}
	assert.Equal(t, 1, repo.Count())
}
