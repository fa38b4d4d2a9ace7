// ABOUTME: Tests for snapshot export and import.
// ABOUTME: Round-trips a populated store into a fresh one.
package storage

import (
	"encoding/json"
	"testing"

	"liftlog/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupSeededStore(t)

	// User data on top of the seeds.
	customID, err := src.Exercises.Create("Pause Squat")
	if err != nil {
		t.Fatalf("Create exercise failed: %v", err)
	}
	if _, err := src.Routines.Create(models.RoutineInput{
		Name:      "My Routine",
		Exercises: []models.RoutineExerciseInput{{ExerciseID: customID, Sets: benchSets}},
	}); err != nil {
		t.Fatalf("Create routine failed: %v", err)
	}
	notes := "easy session"
	if _, err := src.Workouts.Create(models.WorkoutInput{
		StartDateTime: "2026-08-28T18:00:00",
		EndDateTime:   "2026-08-28T19:00:00",
		Notes:         &notes,
		Exercises:     []models.WorkoutExerciseInput{{ExerciseID: customID, Sets: benchSets}},
	}); err != nil {
		t.Fatalf("Create workout failed: %v", err)
	}
	if _, err := src.Profile.Create("Alex", 30, "M"); err != nil {
		t.Fatalf("Create profile failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if snap.Version != "1.0" || snap.Tool != "liftlog" {
		t.Errorf("unexpected snapshot header: %+v", snap)
	}

	// Replay into a fresh (seeded) store.
	dst := setupSeededStore(t)
	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	// Premades not duplicated.
	premade, err := dst.Routines.ListPremade()
	if err != nil {
		t.Fatalf("ListPremade failed: %v", err)
	}
	if len(premade) != 5 {
		t.Errorf("expected 5 premade routines after import, got %d", len(premade))
	}

	// The custom exercise arrived with its id.
	exercises, err := dst.Exercises.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	found := false
	for _, ex := range exercises {
		if ex.ID == customID && ex.Name == "Pause Squat" {
			found = true
		}
	}
	if !found {
		t.Error("custom exercise missing after import")
	}

	user, err := dst.Routines.ListUser()
	if err != nil {
		t.Fatalf("ListUser failed: %v", err)
	}
	if len(user) != 1 || user[0].Name != "My Routine" {
		t.Errorf("user routine missing after import: %+v", user)
	}

	sessions, err := dst.Workouts.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 workout after import, got %d", len(sessions))
	}
	if sessions[0].StartDateTime != "2026-08-28T18:00:00" {
		t.Errorf("workout timestamp rewritten: %q", sessions[0].StartDateTime)
	}
	if sessions[0].Notes == nil || *sessions[0].Notes != "easy session" {
		t.Errorf("workout notes lost: %v", sessions[0].Notes)
	}

	profile, err := dst.Profile.Get()
	if err != nil {
		t.Fatalf("Get profile failed: %v", err)
	}
	if profile == nil || profile.Name != "Alex" || profile.Age != 30 {
		t.Errorf("profile missing after import: %+v", profile)
	}
}

func TestExportYAML(t *testing.T) {
	store := setupSeededStore(t)

	data, err := store.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected YAML output")
	}
}
