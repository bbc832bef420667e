package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Role gates the administrative routes; everyone starts as a member.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered account. Email is the unique, case-sensitive
// match key. Anything else the client registered with (name, photo, ...) rides
// along in Extra.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email,omitempty"`
	Role  string             `bson:"role,omitempty"`
	Extra bson.M             `bson:",inline"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	fields := bson.M{}
	if !u.ID.IsZero() {
		fields["_id"] = u.ID.Hex()
	}
	if u.Email != "" {
		fields["email"] = u.Email
	}
	if u.Role != "" {
		fields["role"] = u.Role
	}
	return marshalDoc(u.Extra, fields)
}

func (u *User) UnmarshalJSON(data []byte) error {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	u.ID = popObjectID(doc)
	popValue(doc, "email", &u.Email)
	popValue(doc, "role", &u.Role)
	extra, err := rest(doc)
	if err != nil {
		return err
	}
	u.Extra = extra
	return nil
}
