package repo

import (
	"context"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sampleRun() *dmn.Run {
	return &dmn.Run{
		ID:         uuid.New(),
		SessionID:  uuid.New(),
		WorldID:    uuid.New(),
		Seed:       42,
		Cols:       11,
		Rows:       11,
		Frames:     812,
		Bounces:    9,
		Duration:   13 * time.Second,
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func documentOf(run *dmn.Run) bson.D {
	doc := toDocument(run)
	return bson.D{
		{Key: "_id", Value: doc.ID},
		{Key: "sessionId", Value: doc.SessionID},
		{Key: "worldId", Value: doc.WorldID},
		{Key: "seed", Value: doc.Seed},
		{Key: "cols", Value: doc.Cols},
		{Key: "rows", Value: doc.Rows},
		{Key: "frames", Value: doc.Frames},
		{Key: "bounces", Value: doc.Bounces},
		{Key: "durationMs", Value: doc.DurationMS},
		{Key: "finishedAt", Value: doc.FinishedAt},
	}
}

func TestRunRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Save", func(mt *mtest.T) {
		r := &RunRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, r.Save(ctx, sampleRun()))
	})

	mt.Run("Save failure", func(mt *mtest.T) {
		r := &RunRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "boom"}))

		assert.Error(mt, r.Save(ctx, sampleRun()))
	})

	mt.Run("ByID", func(mt *mtest.T) {
		r := &RunRepo{collection: mt.Coll}
		want := sampleRun()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, documentOf(want)))

		got, err := r.ByID(ctx, want.ID)
		require.NoError(mt, err)
		assert.Equal(mt, want.ID, got.ID)
		assert.Equal(mt, want.SessionID, got.SessionID)
		assert.Equal(mt, want.Duration, got.Duration)
		assert.Equal(mt, want.Bounces, got.Bounces)
		assert.True(mt, want.FinishedAt.Equal(got.FinishedAt))
	})

	mt.Run("ByID not found", func(mt *mtest.T) {
		r := &RunRepo{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := r.ByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, ErrRunNotFound)
	})

	mt.Run("BySession", func(mt *mtest.T) {
		r := &RunRepo{collection: mt.Coll}
		first, second := sampleRun(), sampleRun()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, documentOf(first), documentOf(second)))

		runs, err := r.BySession(ctx, first.SessionID, 10)
		require.NoError(mt, err)
		require.Len(mt, runs, 2)
		assert.Equal(mt, first.ID, runs[0].ID)
		assert.Equal(mt, second.ID, runs[1].ID)
	})
}
