package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
)

// MazeCrafter defines maze generation and retrieval as exposed to the API.
type MazeCrafter interface {
	// Craft generates a solved maze of the given side length using the seed,
	// persists it, and returns the stored record. A zero seed asks the
	// service to pick one.
	Craft(ctx context.Context, size int, seed int64, createdBy string) (*dmn.MazeRecord, error)

	// ByID retrieves a previously crafted maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

// MazeCache defines a read-through cache for serialized maze records.
type MazeCache interface {
	// Get returns the cached record for the ID, or a miss error.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Set stores the record under its ID.
	Set(ctx context.Context, record *dmn.MazeRecord) error
}
