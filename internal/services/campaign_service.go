package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/query"
)

// CampaignServiceProvider defines the interface for donation campaign
// services.
type CampaignServiceProvider interface {
	List(ctx context.Context) ([]models.Campaign, error)
	Mine(ctx context.Context, creator string) ([]models.Campaign, error)
	Get(ctx context.Context, id string) (models.Campaign, error)
	Create(ctx context.Context, campaign models.Campaign) (models.InsertResult, error)
	Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// CampaignService provides donation campaign operations on top of the
// campaigns collection.
type CampaignService struct {
	campaigns *mongo.Collection
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(db *mongo.Database) *CampaignService {
	return &CampaignService{campaigns: db.Collection("campaigns")}
}

// List returns every campaign, most recently created first.
func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_on", Value: -1}})
	return s.find(ctx, bson.M{}, opts)
}

// Mine returns the campaigns owned by creator, or every campaign when creator
// is empty.
func (s *CampaignService) Mine(ctx context.Context, creator string) ([]models.Campaign, error) {
	return s.find(ctx, query.Owner("creator", creator), options.Find())
}

// Get retrieves a single campaign by id.
func (s *CampaignService) Get(ctx context.Context, id string) (models.Campaign, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Campaign{}, err
	}
	var campaign models.Campaign
	if err := s.campaigns.FindOne(ctx, bson.M{"_id": oid}).Decode(&campaign); err != nil {
		return models.Campaign{}, err
	}
	return campaign, nil
}

// Create inserts a new campaign as-is.
func (s *CampaignService) Create(ctx context.Context, campaign models.Campaign) (models.InsertResult, error) {
	result, err := s.campaigns.InsertOne(ctx, campaign)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Update applies the given fields to the campaign with $set.
func (s *CampaignService) Update(ctx context.Context, id string, update bson.M) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	result, err := s.campaigns.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete removes the campaign with the given id.
func (s *CampaignService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	result, err := s.campaigns.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func (s *CampaignService) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Campaign, error) {
	cursor, err := s.campaigns.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}
