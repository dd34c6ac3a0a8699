package service

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrMazeTooLarge is returned when a requested size exceeds the configured cap.
var ErrMazeTooLarge = errors.New("requested maze size exceeds the configured maximum")

// MazeService crafts solved mazes and serves them back by ID. Crafting runs
// the whole pipeline in place on one maze: blank grid, Wilson generation,
// Tremaux solving, then serialization for storage. Reads go through the
// cache before touching the repository.
type MazeService struct {
	repo    i.MazeRepo
	cache   i.MazeCache
	maxSize int
	logger  *logrus.Entry
}

// NewMazeService creates a MazeService. The cache is optional; the
// repository is not.
func NewMazeService(repo i.MazeRepo, cache i.MazeCache, maxSize int, logger *logrus.Entry) (*MazeService, error) {
	if repo == nil {
		return nil, errors.New("maze service requires a repository")
	}
	if maxSize < 1 {
		return nil, fmt.Errorf("invalid maze size cap %d", maxSize)
	}
	return &MazeService{
		repo:    repo,
		cache:   cache,
		maxSize: maxSize,
		logger:  logger,
	}, nil
}

// Craft generates and solves a size x size maze, stores it, and returns the
// record. Seed zero picks a fresh random seed; any other value makes the
// layout reproducible.
func (s *MazeService) Craft(ctx context.Context, size int, seed int64, createdBy string) (*dmn.MazeRecord, error) {
	if size > s.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMazeTooLarge, size, s.maxSize)
	}
	if seed == 0 {
		seed = randomSeed()
	}

	m, err := maze.New(size, size)
	if err != nil {
		return nil, err
	}
	if err := maze.Generate(m, rand.New(rand.NewSource(seed)), s.logger); err != nil {
		return nil, err
	}
	if err := maze.Solve(m, s.logger); err != nil {
		return nil, err
	}

	entrance, _ := m.Entrance()
	exit, _ := m.Exit()
	record := &dmn.MazeRecord{
		ID:          uuid.New(),
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		Seed:        seed,
		EntranceRow: entrance.Row,
		EntranceCol: entrance.Col,
		ExitRow:     exit.Row,
		ExitCol:     exit.Col,
		PathLength:  pathLength(m),
		Data:        maze.Encode(m),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Save(record); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, record); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("caching crafted maze failed")
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"id":   record.ID,
			"size": size,
			"seed": seed,
		}).Info("maze crafted")
	}
	return record, nil
}

// ByID returns a stored maze, consulting the cache first.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if s.cache != nil {
		if record, err := s.cache.Get(ctx, id); err == nil {
			return record, nil
		}
	}

	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, record); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("refilling maze cache failed")
		}
	}
	return record, nil
}

// pathLength counts the labeled path cells, entrance and exit included.
func pathLength(m *maze.Maze) int {
	count := 0
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			cell, err := m.CellAt(maze.CellPosition{Row: row, Col: col})
			if err != nil {
				continue
			}
			if cell.OnPath() {
				count++
			}
		}
	}
	return count
}

// randomSeed draws a non-zero seed from the OS entropy source.
func randomSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
