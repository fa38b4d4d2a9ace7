// ABOUTME: Tests for ProfileRepo: singleton enforcement and partial updates.
// ABOUTME: Covers the Alex age-bump scenario and the empty-update contract.
package storage

import (
	"errors"
	"testing"

	"liftlog/internal/models"
)

func TestProfileGetBeforeCreate(t *testing.T) {
	store := setupTestStore(t)

	profile, err := store.Profile.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil before create, got %+v", profile)
	}
}

func TestProfileCreateAndGet(t *testing.T) {
	store := setupTestStore(t)

	id, err := store.Profile.Create("Alex", 30, "M")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected fixed id 1, got %d", id)
	}

	profile, err := store.Profile.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile == nil {
		t.Fatal("expected profile, got nil")
	}
	if profile.Name != "Alex" || profile.Age != 30 || profile.Gender != "M" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestProfileCreateTwiceRefused(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Profile.Create("Alex", 30, "M"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Profile.Create("Sam", 25, "F")
	var iv *InvariantViolation
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolation, got %v", err)
	}

	if n := countRows(t, store, "SELECT COUNT(*) FROM user_profile"); n != 1 {
		t.Errorf("expected exactly 1 profile row, got %d", n)
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Profile.Create("Alex", 30, "M"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	age := 31
	if err := store.Profile.Update(models.ProfileUpdate{Age: &age}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	profile, err := store.Profile.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.Name != "Alex" || profile.Age != 31 || profile.Gender != "M" {
		t.Errorf("expected only age to change, got %+v", profile)
	}
}

func TestProfileEmptyUpdateRejected(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Profile.Create("Alex", 30, "M"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := store.Profile.Update(models.ProfileUpdate{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProfileUpdateBeforeCreate(t *testing.T) {
	store := setupTestStore(t)

	name := "Alex"
	err := store.Profile.Update(models.ProfileUpdate{Name: &name})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
