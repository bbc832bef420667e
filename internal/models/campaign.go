package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is a donation campaign, owned by its creator and listed newest
// first by created_on.
type Campaign struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Creator   string             `bson:"creator,omitempty"`
	CreatedOn string             `bson:"created_on,omitempty"`
	Extra     bson.M             `bson:",inline"`
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	fields := bson.M{}
	if !c.ID.IsZero() {
		fields["_id"] = c.ID.Hex()
	}
	if c.Creator != "" {
		fields["creator"] = c.Creator
	}
	if c.CreatedOn != "" {
		fields["created_on"] = c.CreatedOn
	}
	return marshalDoc(c.Extra, fields)
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	c.ID = popObjectID(doc)
	popValue(doc, "creator", &c.Creator)
	popValue(doc, "created_on", &c.CreatedOn)
	extra, err := rest(doc)
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}
