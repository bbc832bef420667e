package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPetJSONSplitsKnownAndExtraFields(t *testing.T) {
	id := primitive.NewObjectID()
	payload := `{
		"_id": "` + id.Hex() + `",
		"pet_name": "Bella",
		"pet_category": {"value": "cat", "label": "Cat"},
		"lister_email": "a@x.com",
		"listed_time": "2024-03-01T10:00:00Z",
		"pet_age": 3,
		"pet_location": "Dhaka"
	}`

	var pet Pet
	if err := json.Unmarshal([]byte(payload), &pet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if pet.ID != id {
		t.Errorf("id = %v, want %v", pet.ID, id)
	}
	if pet.PetName != "Bella" || pet.ListerEmail != "a@x.com" {
		t.Errorf("typed fields not extracted: %+v", pet)
	}
	if pet.PetCategory == nil || pet.PetCategory.Value != "cat" {
		t.Errorf("pet_category = %+v, want value cat", pet.PetCategory)
	}
	if pet.Extra["pet_location"] != "Dhaka" {
		t.Errorf("extra fields lost: %v", pet.Extra)
	}
	if _, ok := pet.Extra["pet_name"]; ok {
		t.Error("typed field duplicated into the open map")
	}

	// The merged document round-trips through JSON.
	out, err := json.Marshal(pet)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal merged doc: %v", err)
	}
	if doc["_id"] != id.Hex() {
		t.Errorf("_id = %v, want %s", doc["_id"], id.Hex())
	}
	if doc["pet_name"] != "Bella" || doc["pet_age"] != float64(3) {
		t.Errorf("merged doc = %v", doc)
	}
}

func TestPetJSONWithoutID(t *testing.T) {
	var pet Pet
	if err := json.Unmarshal([]byte(`{"pet_name": "Rex"}`), &pet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !pet.ID.IsZero() {
		t.Errorf("id = %v, want zero", pet.ID)
	}

	out, err := json.Marshal(pet)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal merged doc: %v", err)
	}
	if _, ok := doc["_id"]; ok {
		t.Error("zero id should stay out of the document")
	}
}

func TestUserRoleDefault(t *testing.T) {
	var user User
	if err := json.Unmarshal([]byte(`{"email": "a@x.com", "name": "Abby"}`), &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.IsAdmin() {
		t.Error("user without a role must not be admin")
	}
	if user.Extra["name"] != "Abby" {
		t.Errorf("extra fields lost: %v", user.Extra)
	}
}
