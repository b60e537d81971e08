package repository

import (
	"context"
	"fmt"
	"health_data_api/internal/common"
	"health_data_api/internal/domain/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	HealthDataCollection = "health_data"

	// MaxHealthDataResults caps ListByUserID. There is no paging past it.
	MaxHealthDataResults = 100
)

type HealthDataRepository interface {
	// Create ignores record.ID and returns the identifier assigned by the store.
	Create(ctx context.Context, record model.HealthData) (string, error)
	// ListByUserID returns at most MaxHealthDataResults records in store order.
	ListByUserID(ctx context.Context, userID string) ([]model.HealthData, error)
}

type healthDataDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"user_id"`
	Date   time.Time          `bson:"date"`
	Weight float64            `bson:"weight"`
}

func newHealthDataDocument(h model.HealthData) healthDataDocument {
	// ID stays zero so that omitempty drops it and the store assigns one.
	return healthDataDocument{
		UserID: h.UserID,
		Date:   h.Date,
		Weight: h.Weight,
	}
}

func (d healthDataDocument) toModel() model.HealthData {
	return model.HealthData{
		ID:     IDToString(d.ID),
		UserID: d.UserID,
		Date:   d.Date,
		Weight: d.Weight,
	}
}

type mongoHealthDataRepository struct {
	coll *mongo.Collection
}

func NewMongoHealthDataRepository(db *mongo.Database) HealthDataRepository {
	return &mongoHealthDataRepository{coll: db.Collection(HealthDataCollection)}
}

func (r *mongoHealthDataRepository) Create(ctx context.Context, record model.HealthData) (string, error) {
	res, err := r.coll.InsertOne(ctx, newHealthDataDocument(record))
	if err != nil {
		return "", common.NewStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", common.NewStoreError(fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	return IDToString(oid), nil
}

func (r *mongoHealthDataRepository) ListByUserID(ctx context.Context, userID string) ([]model.HealthData, error) {
	opts := options.Find().SetLimit(MaxHealthDataResults)
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, common.NewStoreError(err)
	}
	defer cursor.Close(ctx)

	var docs []healthDataDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.NewStoreError(err)
	}

	records := make([]model.HealthData, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.toModel())
	}
	return records, nil
}
