package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is the stored form of a generated and solved maze: the
// dimensions and seed that produced it, where its entrance and exit sit, how
// long the solved path is, and the serialized row-major text data handed to
// renderers.
type MazeRecord struct {
	ID          uuid.UUID `bson:"_id"`
	Rows        int       `bson:"rows"`
	Cols        int       `bson:"cols"`
	Seed        int64     `bson:"seed"`
	EntranceRow int       `bson:"entranceRow"`
	EntranceCol int       `bson:"entranceCol"`
	ExitRow     int       `bson:"exitRow"`
	ExitCol     int       `bson:"exitCol"`
	PathLength  int       `bson:"pathLength"`
	Data        string    `bson:"data"`
	CreatedBy   string    `bson:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt"`
}
