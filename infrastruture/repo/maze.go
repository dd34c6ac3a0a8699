package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMazeNotFound is returned when no maze record exists for an ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of crafted maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts a maze record. Records are immutable once crafted, so there
// is no upsert path.
func (r *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a maze record by its ID.
func (r *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
