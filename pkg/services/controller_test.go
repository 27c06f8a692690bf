package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kerbaras/champions/pkg/config"
	"github.com/kerbaras/champions/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const likedKey = "likedChampionsIds"

func newTestController(t *testing.T) (*ChampionController, *mockSource, *storage.Memory) {
	t.Helper()
	source := &mockSource{champions: testChampions()}
	store := storage.NewMemory()
	return NewChampionController(source, store, nil, likedKey), source, store
}

func TestNewChampionControllerWithConfig(t *testing.T) {
	cfg := &config.Config{
		Source:   config.SourceSampleAPIs,
		Storage:  config.StorageSQLite,
		DataDir:  t.TempDir(),
		LikedKey: likedKey,
	}

	controller, err := NewChampionControllerWithConfig(cfg, nil)
	require.NoError(t, err)
	defer controller.Close()

	assert.Equal(t, "sampleapis", controller.Source().Name())

	cfg.Source = "unknown"
	_, err = NewChampionControllerWithConfig(cfg, nil)
	assert.Error(t, err)
}

func TestListChampions(t *testing.T) {
	controller, _, store := newTestController(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, likedKey, "[2]"))

	views, err := controller.ListChampions(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.False(t, views[0].Liked)
	assert.True(t, views[1].Liked)
	assert.Equal(t, "Ahri", views[1].Name)
	assert.False(t, views[2].Liked)
}

func TestListChampionsSourceError(t *testing.T) {
	controller, source, _ := newTestController(t)
	source.err = errors.New("offline")

	_, err := controller.ListChampions(context.Background())
	assert.Error(t, err)
}

func TestListChampionsBrokenLikedCell(t *testing.T) {
	source := &mockSource{champions: testChampions()}
	controller := NewChampionController(source, &failingStore{value: "not json", ok: true}, nil, likedKey)

	views, err := controller.ListChampions(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.False(t, v.Liked)
	}
}

func TestListChampionsUnreachableLikedStore(t *testing.T) {
	source := &mockSource{champions: testChampions()}
	controller := NewChampionController(source, &failingStore{getErr: errStorage}, nil, likedKey)

	views, err := controller.ListChampions(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 3)
}

func TestCorruptLikedCellRecovers(t *testing.T) {
	controller, _, store := newTestController(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, likedKey, "not json"))

	set, err := controller.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	liked, err := controller.LikedChampions(ctx)
	require.NoError(t, err)
	assert.Empty(t, liked)

	removed, err := controller.PruneLiked(ctx)
	require.NoError(t, err)
	assert.Empty(t, removed)

	isLiked, err := controller.ToggleLike(ctx, 1)
	require.NoError(t, err)
	assert.True(t, isLiked)

	raw, ok, _ := store.GetItem(ctx, likedKey)
	assert.True(t, ok)
	assert.Equal(t, "[1]", raw)
}

func TestGetChampion(t *testing.T) {
	controller, _, _ := newTestController(t)

	t.Run("found", func(t *testing.T) {
		champion, err := controller.GetChampion(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Akali", champion.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		champion, err := controller.GetChampion(context.Background(), 42)
		assert.Nil(t, champion)
		assert.ErrorIs(t, err, ErrChampionNotFound)
	})
}

func TestLikedIDsMissingCell(t *testing.T) {
	controller, _, _ := newTestController(t)

	set, err := controller.LikedIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLikedIDsStoreError(t *testing.T) {
	controller := NewChampionController(&mockSource{}, &failingStore{getErr: errStorage}, nil, likedKey)

	_, err := controller.LikedIDs(context.Background())
	assert.ErrorIs(t, err, errStorage)
}

func TestToggleLike(t *testing.T) {
	controller, _, store := newTestController(t)
	ctx := context.Background()

	liked, err := controller.ToggleLike(ctx, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	raw, ok, _ := store.GetItem(ctx, likedKey)
	assert.True(t, ok)
	assert.Equal(t, "[2]", raw)

	liked, err = controller.ToggleLike(ctx, 1)
	require.NoError(t, err)
	assert.True(t, liked)

	raw, _, _ = store.GetItem(ctx, likedKey)
	assert.Equal(t, "[2,1]", raw)

	liked, err = controller.ToggleLike(ctx, 2)
	require.NoError(t, err)
	assert.False(t, liked)

	raw, _, _ = store.GetItem(ctx, likedKey)
	assert.Equal(t, "[1]", raw)
}

func TestToggleLikeTwiceRestores(t *testing.T) {
	controller, _, store := newTestController(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, likedKey, "[1,3]"))

	_, err := controller.ToggleLike(ctx, 2)
	require.NoError(t, err)
	_, err = controller.ToggleLike(ctx, 2)
	require.NoError(t, err)

	raw, _, _ := store.GetItem(ctx, likedKey)
	assert.Equal(t, "[1,3]", raw)
}

func TestToggleLikeSaveError(t *testing.T) {
	controller := NewChampionController(&mockSource{}, &failingStore{setErr: errStorage}, nil, likedKey)

	liked, err := controller.ToggleLike(context.Background(), 1)
	assert.ErrorIs(t, err, errStorage)
	assert.False(t, liked)
}

func TestLikedChampions(t *testing.T) {
	controller, source, store := newTestController(t)
	ctx := context.Background()

	t.Run("empty set skips fetch", func(t *testing.T) {
		liked, err := controller.LikedChampions(ctx)
		require.NoError(t, err)
		assert.Empty(t, liked)
		assert.Equal(t, 0, source.Calls())
	})

	t.Run("intersection in list order", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, likedKey, "[3,99,1]"))

		liked, err := controller.LikedChampions(ctx)
		require.NoError(t, err)
		require.Len(t, liked, 2)
		assert.Equal(t, "Aatrox", liked[0].Name)
		assert.Equal(t, "Akali", liked[1].Name)
	})

	t.Run("source error", func(t *testing.T) {
		source.err = errors.New("offline")
		defer func() { source.err = nil }()

		_, err := controller.LikedChampions(ctx)
		assert.Error(t, err)
	})
}

func TestPruneLiked(t *testing.T) {
	controller, _, store := newTestController(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, likedKey, "[3,99,1,100]"))

	removed, err := controller.PruneLiked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{99, 100}, removed)

	raw, _, _ := store.GetItem(ctx, likedKey)
	assert.Equal(t, "[3,1]", raw)

	removed, err = controller.PruneLiked(ctx)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
