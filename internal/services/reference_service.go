package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReferenceServiceProvider defines the interface for the static reference
// collections, read-only to clients.
type ReferenceServiceProvider interface {
	Categories(ctx context.Context) ([]bson.M, error)
	Encourages(ctx context.Context) ([]bson.M, error)
}

// ReferenceService reads the static reference collections.
type ReferenceService struct {
	categories *mongo.Collection
	encourages *mongo.Collection
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(db *mongo.Database) *ReferenceService {
	return &ReferenceService{
		categories: db.Collection("categories"),
		encourages: db.Collection("encourage"),
	}
}

// Categories returns every pet category document.
func (s *ReferenceService) Categories(ctx context.Context) ([]bson.M, error) {
	return allDocs(ctx, s.categories)
}

// Encourages returns every encouragement document.
func (s *ReferenceService) Encourages(ctx context.Context) ([]bson.M, error) {
	return allDocs(ctx, s.encourages)
}

func allDocs(ctx context.Context, coll *mongo.Collection) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}
