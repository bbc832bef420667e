package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adoption is a request to adopt a listed pet, owned by its lister.
type Adoption struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Lister string             `bson:"lister,omitempty"`
	Extra  bson.M             `bson:",inline"`
}

func (a Adoption) MarshalJSON() ([]byte, error) {
	fields := bson.M{}
	if !a.ID.IsZero() {
		fields["_id"] = a.ID.Hex()
	}
	if a.Lister != "" {
		fields["lister"] = a.Lister
	}
	return marshalDoc(a.Extra, fields)
}

func (a *Adoption) UnmarshalJSON(data []byte) error {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	a.ID = popObjectID(doc)
	popValue(doc, "lister", &a.Lister)
	extra, err := rest(doc)
	if err != nil {
		return err
	}
	a.Extra = extra
	return nil
}
