package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUserStruct(t *testing.T) {
	joined := time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)
	user := User{
		ID:         7,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Role:       RoleManager,
		Status:     StatusActive,
		DateJoined: joined,
	}

	if user.Name != "Jane Doe" {
		t.Errorf("Expected name 'Jane Doe', got '%s'", user.Name)
	}

	if user.Role != RoleManager {
		t.Errorf("Expected role 'Manager', got '%s'", user.Role)
	}

	if !user.DateJoined.Equal(joined) {
		t.Errorf("Expected join date %v, got %v", joined, user.DateJoined)
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range Roles() {
		if !role.IsValid() {
			t.Errorf("Expected role '%s' to be valid", role)
		}
	}

	if Role("Superuser").IsValid() {
		t.Error("Expected role 'Superuser' to be invalid")
	}

	if Role("").IsValid() {
		t.Error("Expected empty role to be invalid")
	}
}

func TestStatusIsValid(t *testing.T) {
	if !StatusActive.IsValid() || !StatusInactive.IsValid() {
		t.Error("Expected Active and Inactive to be valid statuses")
	}

	if Status("Suspended").IsValid() {
		t.Error("Expected status 'Suspended' to be invalid")
	}
}

func TestUserPatchApply(t *testing.T) {
	user := User{
		ID:     1,
		Name:   "User 1",
		Email:  "user1@example.com",
		Role:   RoleViewer,
		Status: StatusActive,
	}

	name := "Renamed User"
	status := StatusInactive
	patch := UserPatch{Name: &name, Status: &status}
	patch.Apply(&user)

	if user.Name != "Renamed User" {
		t.Errorf("Expected patched name 'Renamed User', got '%s'", user.Name)
	}
	if user.Status != StatusInactive {
		t.Errorf("Expected patched status 'Inactive', got '%s'", user.Status)
	}

	// Untouched fields must survive the merge
	if user.Email != "user1@example.com" {
		t.Errorf("Expected email to be unchanged, got '%s'", user.Email)
	}
	if user.Role != RoleViewer {
		t.Errorf("Expected role to be unchanged, got '%s'", user.Role)
	}
}

func TestUserJSONSerialization(t *testing.T) {
	user := User{
		ID:         3,
		Name:       "User 3",
		Email:      "user3@example.com",
		Role:       RoleAdmin,
		Status:     StatusInactive,
		DateJoined: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	jsonData, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Failed to marshal User to JSON: %v", err)
	}

	var decoded User
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal User from JSON: %v", err)
	}

	if decoded.ID != user.ID {
		t.Errorf("Expected ID %d, got %d", user.ID, decoded.ID)
	}
	if decoded.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, decoded.Email)
	}
	if !decoded.DateJoined.Equal(user.DateJoined) {
		t.Errorf("Expected join date %v, got %v", user.DateJoined, decoded.DateJoined)
	}
}
