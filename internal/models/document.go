package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The listing models keep their ownership and sort fields typed and carry every
// other client-supplied attribute in an open map. The helpers below merge and
// split those two halves when documents cross the JSON boundary.

// marshalDoc merges the typed fields over the open attribute map.
func marshalDoc(extra bson.M, fields bson.M) ([]byte, error) {
	doc := make(map[string]interface{}, len(extra)+len(fields))
	for k, v := range extra {
		doc[k] = v
	}
	for k, v := range fields {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// popValue decodes doc[key] into out and removes the key. A value that does
// not decode cleanly is left in place so it survives in the open map instead.
func popValue(doc map[string]json.RawMessage, key string, out interface{}) {
	raw, ok := doc[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return
	}
	delete(doc, key)
}

// popObjectID removes the _id hex string from doc, when it is one.
func popObjectID(doc map[string]json.RawMessage) primitive.ObjectID {
	raw, ok := doc["_id"]
	if !ok {
		return primitive.NilObjectID
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	delete(doc, "_id")
	return id
}

// rest decodes whatever keys remain into the open attribute map.
func rest(doc map[string]json.RawMessage) (bson.M, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	extra := make(bson.M, len(doc))
	for k, raw := range doc {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		extra[k] = v
	}
	return extra, nil
}
