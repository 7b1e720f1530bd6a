package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrRunNotFound = errors.New("run not found")

// RunRepo handles the persistence of finished runs.
type RunRepo struct {
	collection *mongo.Collection
}

var _ i.RunRepo = &RunRepo{}

// runDocument is the stored form of a run.
type runDocument struct {
	ID         string    `bson:"_id"`
	SessionID  string    `bson:"sessionId"`
	WorldID    string    `bson:"worldId"`
	Seed       int64     `bson:"seed"`
	Cols       int       `bson:"cols"`
	Rows       int       `bson:"rows"`
	Frames     int64     `bson:"frames"`
	Bounces    int       `bson:"bounces"`
	DurationMS int64     `bson:"durationMs"`
	FinishedAt time.Time `bson:"finishedAt"`
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// Save inserts or replaces a run.
func (r *RunRepo) Save(ctx context.Context, run *dmn.Run) error {
	doc := toDocument(run)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a run by its ID.
func (r *RunRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error) {
	var doc runDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRunNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return fromDocument(&doc)
}

// BySession lists the runs of a session, newest first.
func (r *RunRepo) BySession(ctx context.Context, sessionID uuid.UUID, limit int64) ([]*dmn.Run, error) {
	opts := options.Find().SetSort(bson.D{{Key: "finishedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID.String()}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var docs []runDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	runs := make([]*dmn.Run, 0, len(docs))
	for idx := range docs {
		run, err := fromDocument(&docs[idx])
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toDocument(run *dmn.Run) *runDocument {
	return &runDocument{
		ID:         run.ID.String(),
		SessionID:  run.SessionID.String(),
		WorldID:    run.WorldID.String(),
		Seed:       run.Seed,
		Cols:       run.Cols,
		Rows:       run.Rows,
		Frames:     run.Frames,
		Bounces:    run.Bounces,
		DurationMS: run.Duration.Milliseconds(),
		FinishedAt: run.FinishedAt.UTC(),
	}
}

func fromDocument(doc *runDocument) (*dmn.Run, error) {
	var ids [3]uuid.UUID
	for idx, raw := range []string{doc.ID, doc.SessionID, doc.WorldID} {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("corrupt run document: " + err.Error())
		}
		ids[idx] = id
	}

	return &dmn.Run{
		ID:         ids[0],
		SessionID:  ids[1],
		WorldID:    ids[2],
		Seed:       doc.Seed,
		Cols:       doc.Cols,
		Rows:       doc.Rows,
		Frames:     doc.Frames,
		Bounces:    doc.Bounces,
		Duration:   time.Duration(doc.DurationMS) * time.Millisecond,
		FinishedAt: doc.FinishedAt,
	}, nil
}
