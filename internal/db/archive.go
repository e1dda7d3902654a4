package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/fleet-ops/internal/store"
)

// stateDocID is the _id of the single archived state document.
const stateDocID = "fleet-state"

// StateCollection is the subset of *mongo.Collection the archive needs.
type StateCollection interface {
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// Archive persists store snapshots as a single document.
type Archive struct {
	coll StateCollection
}

// NewArchive wraps a collection as a snapshot archive.
func NewArchive(coll StateCollection) *Archive {
	return &Archive{coll: coll}
}

type stateDoc struct {
	ID    string         `bson:"_id"`
	State store.Snapshot `bson:"state"`
}

// Save upserts the snapshot, replacing any previously archived state.
func (a *Archive) Save(ctx context.Context, snap store.Snapshot) error {
	if a.coll == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := stateDoc{ID: stateDocID, State: snap}
	opts := options.Replace().SetUpsert(true)
	if _, err := a.coll.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts); err != nil {
		return fmt.Errorf("archive save: %w", err)
	}
	return nil
}

// Load fetches the archived snapshot. ok is false when no state has
// been archived yet.
func (a *Archive) Load(ctx context.Context) (snap store.Snapshot, ok bool, err error) {
	if a.coll == nil {
		return store.Snapshot{}, false, fmt.Errorf("mongo collection is nil")
	}
	var doc stateDoc
	err = a.coll.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("archive load: %w", err)
	}
	return doc.State, true, nil
}
