package api

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// In-memory stand-ins for the mongo-backed services, honoring the same
// contracts the handlers rely on.

type fakeUserService struct {
	users []*models.User
}

func (f *fakeUserService) byEmail(email string) *models.User {
	for _, u := range f.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeUserService) ListUsers(context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserService) Register(_ context.Context, user models.User) (models.InsertResult, error) {
	if f.byEmail(user.Email) != nil {
		return models.InsertResult{Acknowledged: true, Message: "user already exists"}, nil
	}
	user.ID = primitive.NewObjectID()
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	f.users = append(f.users, &user)
	return models.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (f *fakeUserService) IsAdmin(_ context.Context, email string) (bool, error) {
	u := f.byEmail(email)
	return u != nil && u.IsAdmin(), nil
}

func (f *fakeUserService) MakeAdmin(_ context.Context, id string) (models.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %q", services.ErrInvalidID, id)
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			var modified int64
			if u.Role != models.RoleAdmin {
				u.Role = models.RoleAdmin
				modified = 1
			}
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

type fakePetService struct {
	pets []models.Pet
}

func (f *fakePetService) Search(_ context.Context, search, category string) ([]models.Pet, error) {
	matched := make([]models.Pet, 0)
	for _, p := range f.pets {
		if search != "" && !strings.Contains(strings.ToLower(p.PetName), strings.ToLower(search)) {
			continue
		}
		if category != "" && (p.PetCategory == nil || !strings.Contains(p.PetCategory.Value, category)) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ListedTime > matched[j].ListedTime })
	return matched, nil
}

func (f *fakePetService) owned(lister string) []models.Pet {
	if lister == "" {
		return f.pets
	}
	out := make([]models.Pet, 0)
	for _, p := range f.pets {
		if p.ListerEmail == lister {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePetService) Mine(_ context.Context, lister string, skip, limit int64) ([]models.Pet, error) {
	if limit <= 0 {
		return []models.Pet{}, nil
	}
	owned := f.owned(lister)
	if skip >= int64(len(owned)) {
		return []models.Pet{}, nil
	}
	end := skip + limit
	if end > int64(len(owned)) {
		end = int64(len(owned))
	}
	return owned[skip:end], nil
}

func (f *fakePetService) MineAll(_ context.Context, lister string) ([]models.Pet, error) {
	return f.owned(lister), nil
}

func (f *fakePetService) Get(_ context.Context, id string) (models.Pet, error) {
	for _, p := range f.pets {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Pet{}, mongo.ErrNoDocuments
}

func (f *fakePetService) Create(_ context.Context, pet models.Pet) (models.InsertResult, error) {
	pet.ID = primitive.NewObjectID()
	f.pets = append(f.pets, pet)
	return models.InsertResult{Acknowledged: true, InsertedID: pet.ID}, nil
}

func (f *fakePetService) Update(_ context.Context, id string, _ bson.M) (models.UpdateResult, error) {
	for _, p := range f.pets {
		if p.ID.Hex() == id {
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakePetService) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	for i, p := range f.pets {
		if p.ID.Hex() == id {
			f.pets = append(f.pets[:i], f.pets[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

type fakeAdoptionService struct {
	adoptions []models.Adoption
}

func (f *fakeAdoptionService) Mine(_ context.Context, lister string) ([]models.Adoption, error) {
	out := make([]models.Adoption, 0)
	for _, a := range f.adoptions {
		if lister == "" || a.Lister == lister {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdoptionService) Create(_ context.Context, adoption models.Adoption) (models.InsertResult, error) {
	adoption.ID = primitive.NewObjectID()
	f.adoptions = append(f.adoptions, adoption)
	return models.InsertResult{Acknowledged: true, InsertedID: adoption.ID}, nil
}

func (f *fakeAdoptionService) Update(_ context.Context, id string, _ bson.M) (models.UpdateResult, error) {
	for _, a := range f.adoptions {
		if a.ID.Hex() == id {
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

type fakeCampaignService struct {
	campaigns []models.Campaign
}

func (f *fakeCampaignService) List(context.Context) ([]models.Campaign, error) {
	out := make([]models.Campaign, 0, len(f.campaigns))
	out = append(out, f.campaigns...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedOn > out[j].CreatedOn })
	return out, nil
}

func (f *fakeCampaignService) Mine(_ context.Context, creator string) ([]models.Campaign, error) {
	out := make([]models.Campaign, 0)
	for _, c := range f.campaigns {
		if creator == "" || c.Creator == creator {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampaignService) Get(_ context.Context, id string) (models.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID.Hex() == id {
			return c, nil
		}
	}
	return models.Campaign{}, mongo.ErrNoDocuments
}

func (f *fakeCampaignService) Create(_ context.Context, campaign models.Campaign) (models.InsertResult, error) {
	campaign.ID = primitive.NewObjectID()
	f.campaigns = append(f.campaigns, campaign)
	return models.InsertResult{Acknowledged: true, InsertedID: campaign.ID}, nil
}

func (f *fakeCampaignService) Update(_ context.Context, id string, _ bson.M) (models.UpdateResult, error) {
	for _, c := range f.campaigns {
		if c.ID.Hex() == id {
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeCampaignService) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	for i, c := range f.campaigns {
		if c.ID.Hex() == id {
			f.campaigns = append(f.campaigns[:i], f.campaigns[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

type fakeReferenceService struct{}

func (fakeReferenceService) Categories(context.Context) ([]bson.M, error) {
	return []bson.M{{"value": "cat", "label": "Cat"}}, nil
}

func (fakeReferenceService) Encourages(context.Context) ([]bson.M, error) {
	return []bson.M{}, nil
}
