package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMazeRepo keeps records in a map.
type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *fakeMazeRepo) Save(record *dmn.MazeRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

// fakeMazeCache records hits and misses.
type fakeMazeCache struct {
	records map[uuid.UUID]*dmn.MazeRecord
	gets    int
	sets    int
}

func newFakeMazeCache() *fakeMazeCache {
	return &fakeMazeCache{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (c *fakeMazeCache) Get(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	c.gets++
	record, ok := c.records[id]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return record, nil
}

func (c *fakeMazeCache) Set(_ context.Context, record *dmn.MazeRecord) error {
	c.sets++
	c.records[record.ID] = record
	return nil
}

func newTestService(t *testing.T, repo *fakeMazeRepo, cache i.MazeCache) *MazeService {
	t.Helper()
	svc, err := NewMazeService(repo, cache, 50, nil)
	require.NoError(t, err)
	return svc
}

func TestNewMazeService(t *testing.T) {
	t.Run("rejects nil repository", func(t *testing.T) {
		_, err := NewMazeService(nil, newFakeMazeCache(), 50, nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive size cap", func(t *testing.T) {
		_, err := NewMazeService(newFakeMazeRepo(), nil, 0, nil)
		assert.Error(t, err)
	})
}

func TestCraft(t *testing.T) {
	repo := newFakeMazeRepo()
	cache := newFakeMazeCache()
	svc := newTestService(t, repo, cache)

	record, err := svc.Craft(context.Background(), 6, 42, "wanderer")
	require.NoError(t, err)

	assert.Equal(t, 6, record.Rows)
	assert.Equal(t, 6, record.Cols)
	assert.Equal(t, int64(42), record.Seed)
	assert.Equal(t, "wanderer", record.CreatedBy)
	assert.NotEmpty(t, record.Data)
	assert.GreaterOrEqual(t, record.PathLength, 2)

	// The stored payload must decode back into a maze with the recorded
	// entrance and exit.
	m, err := maze.Decode(record.Data)
	require.NoError(t, err)
	entrance, ok := m.Entrance()
	require.True(t, ok)
	assert.Equal(t, record.EntranceRow, entrance.Row)
	assert.Equal(t, record.EntranceCol, entrance.Col)

	// Crafting persists and warms the cache.
	assert.Len(t, repo.records, 1)
	assert.Equal(t, 1, cache.sets)
}

func TestCraftIsReproducible(t *testing.T) {
	svc := newTestService(t, newFakeMazeRepo(), nil)

	first, err := svc.Craft(context.Background(), 8, 1234, "")
	require.NoError(t, err)
	second, err := svc.Craft(context.Background(), 8, 1234, "")
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.PathLength, second.PathLength)
}

func TestCraftPicksSeedWhenZero(t *testing.T) {
	svc := newTestService(t, newFakeMazeRepo(), nil)

	record, err := svc.Craft(context.Background(), 4, 0, "")
	require.NoError(t, err)
	assert.NotZero(t, record.Seed)
}

func TestCraftRejectsOversize(t *testing.T) {
	svc := newTestService(t, newFakeMazeRepo(), nil)

	_, err := svc.Craft(context.Background(), 51, 1, "")
	assert.ErrorIs(t, err, ErrMazeTooLarge)
}

func TestCraftSaveFailure(t *testing.T) {
	repo := newFakeMazeRepo()
	repo.saveErr = errors.New("db down")
	svc := newTestService(t, repo, nil)

	_, err := svc.Craft(context.Background(), 4, 1, "")
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	t.Run("serves from cache first", func(t *testing.T) {
		repo := newFakeMazeRepo()
		cache := newFakeMazeCache()
		svc := newTestService(t, repo, cache)

		record, err := svc.Craft(context.Background(), 4, 7, "")
		require.NoError(t, err)

		got, err := svc.ByID(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, 1, cache.gets)
	})

	t.Run("falls back to repository and refills cache", func(t *testing.T) {
		repo := newFakeMazeRepo()
		cache := newFakeMazeCache()
		svc := newTestService(t, repo, cache)

		record, err := svc.Craft(context.Background(), 4, 7, "")
		require.NoError(t, err)
		delete(cache.records, record.ID)

		got, err := svc.ByID(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Data, got.Data)
		assert.Equal(t, 2, cache.sets) // craft warm plus refill
	})

	t.Run("unknown id errors", func(t *testing.T) {
		svc := newTestService(t, newFakeMazeRepo(), nil)

		_, err := svc.ByID(context.Background(), uuid.New())
		assert.Error(t, err)
	})
}
