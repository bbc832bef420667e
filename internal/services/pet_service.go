package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/query"
)

// PetServiceProvider defines the interface for pet listing services.
type PetServiceProvider interface {
	Search(ctx context.Context, search, category string) ([]models.Pet, error)
	Mine(ctx context.Context, listerEmail string, skip, limit int64) ([]models.Pet, error)
	MineAll(ctx context.Context, listerEmail string) ([]models.Pet, error)
	Get(ctx context.Context, id string) (models.Pet, error)
	Create(ctx context.Context, pet models.Pet) (models.InsertResult, error)
	Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// PetService provides the pet listing operations on top of the pets
// collection.
type PetService struct {
	pets *mongo.Collection
}

// NewPetService creates a new PetService.
func NewPetService(db *mongo.Database) *PetService {
	return &PetService{pets: db.Collection("pets")}
}

// Search lists the pets matching the optional search text and category, most
// recently listed first.
func (s *PetService) Search(ctx context.Context, search, category string) ([]models.Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "listed_time", Value: -1}})
	return s.find(ctx, query.PetSearch(search, category), opts)
}

// Mine pages through the listings owned by listerEmail. A zero limit selects
// nothing; an empty listerEmail pages through the whole collection.
func (s *PetService) Mine(ctx context.Context, listerEmail string, skip, limit int64) ([]models.Pet, error) {
	if limit <= 0 {
		return []models.Pet{}, nil
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return s.find(ctx, query.Owner("lister_email", listerEmail), opts)
}

// MineAll returns the full set of listings owned by listerEmail, without
// pagination, so the caller can measure its length.
func (s *PetService) MineAll(ctx context.Context, listerEmail string) ([]models.Pet, error) {
	return s.find(ctx, query.Owner("lister_email", listerEmail), options.Find())
}

// Get retrieves a single listing by id.
func (s *PetService) Get(ctx context.Context, id string) (models.Pet, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Pet{}, err
	}
	var pet models.Pet
	if err := s.pets.FindOne(ctx, bson.M{"_id": oid}).Decode(&pet); err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

// Create inserts a new listing as-is; the store is schema-less and no payload
// validation happens here.
func (s *PetService) Create(ctx context.Context, pet models.Pet) (models.InsertResult, error) {
	result, err := s.pets.InsertOne(ctx, pet)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Update applies the given fields to the listing with $set. Any authenticated
// user may update any listing; there is no ownership check on mutation.
func (s *PetService) Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	result, err := s.pets.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete removes the listing with the given id.
func (s *PetService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	result, err := s.pets.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func (s *PetService) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Pet, error) {
	cursor, err := s.pets.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}
