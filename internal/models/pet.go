package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PetCategory is the category reference embedded on a listing.
type PetCategory struct {
	Value string `bson:"value,omitempty" json:"value,omitempty"`
	Label string `bson:"label,omitempty" json:"label,omitempty"`
}

// Pet is a pet listing. Only the fields the filters and sorts depend on are
// typed; the remaining descriptive attributes stay schema-less in Extra.
type Pet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ListerEmail string             `bson:"lister_email,omitempty"`
	PetName     string             `bson:"pet_name,omitempty"`
	PetCategory *PetCategory       `bson:"pet_category,omitempty"`
	ListedTime  string             `bson:"listed_time,omitempty"`
	Extra       bson.M             `bson:",inline"`
}

func (p Pet) MarshalJSON() ([]byte, error) {
	fields := bson.M{}
	if !p.ID.IsZero() {
		fields["_id"] = p.ID.Hex()
	}
	if p.ListerEmail != "" {
		fields["lister_email"] = p.ListerEmail
	}
	if p.PetName != "" {
		fields["pet_name"] = p.PetName
	}
	if p.PetCategory != nil {
		fields["pet_category"] = p.PetCategory
	}
	if p.ListedTime != "" {
		fields["listed_time"] = p.ListedTime
	}
	return marshalDoc(p.Extra, fields)
}

func (p *Pet) UnmarshalJSON(data []byte) error {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.ID = popObjectID(doc)
	popValue(doc, "lister_email", &p.ListerEmail)
	popValue(doc, "pet_name", &p.PetName)
	popValue(doc, "pet_category", &p.PetCategory)
	popValue(doc, "listed_time", &p.ListedTime)
	extra, err := rest(doc)
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}
