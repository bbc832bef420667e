package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/query"
)

// AdoptionServiceProvider defines the interface for adoption request services.
// Adoption requests cannot be deleted.
type AdoptionServiceProvider interface {
	Mine(ctx context.Context, lister string) ([]models.Adoption, error)
	Create(ctx context.Context, adoption models.Adoption) (models.InsertResult, error)
	Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error)
}

// AdoptionService provides adoption request operations on top of the adoptions
// collection.
type AdoptionService struct {
	adoptions *mongo.Collection
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(db *mongo.Database) *AdoptionService {
	return &AdoptionService{adoptions: db.Collection("adoptions")}
}

// Mine returns the adoption requests owned by lister, or every request when
// lister is empty.
func (s *AdoptionService) Mine(ctx context.Context, lister string) ([]models.Adoption, error) {
	cursor, err := s.adoptions.Find(ctx, query.Owner("lister", lister))
	if err != nil {
		return nil, err
	}
	var adoptions []models.Adoption
	if err := cursor.All(ctx, &adoptions); err != nil {
		return nil, err
	}
	if adoptions == nil {
		adoptions = []models.Adoption{}
	}
	return adoptions, nil
}

// Create inserts a new adoption request as-is.
func (s *AdoptionService) Create(ctx context.Context, adoption models.Adoption) (models.InsertResult, error) {
	result, err := s.adoptions.InsertOne(ctx, adoption)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Update applies the given fields to the adoption request with $set.
func (s *AdoptionService) Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	result, err := s.adoptions.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
