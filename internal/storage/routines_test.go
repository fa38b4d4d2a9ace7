// ABOUTME: Tests for RoutineRepo: tree round-trips, list filtering, cascade deletes.
// ABOUTME: Covers the premade-deletion guard and validation contracts.
package storage

import (
	"errors"
	"testing"
	"time"

	"liftlog/internal/models"
)

func TestCreateAndGetRoutine(t *testing.T) {
	store := setupTestStore(t)

	benchID, err := store.Exercises.Create("Bench Press")
	if err != nil {
		t.Fatalf("Create exercise failed: %v", err)
	}
	if benchID != 1 {
		t.Fatalf("expected exercise id 1, got %d", benchID)
	}

	routineID, err := store.Routines.Create(models.RoutineInput{
		Name: "Push Day",
		Exercises: []models.RoutineExerciseInput{
			{ExerciseID: benchID, Sets: []models.Set{
				{SetNumber: 1, Reps: 10, Weight: 135},
				{SetNumber: 2, Reps: 8, Weight: 145},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Create routine failed: %v", err)
	}

	routine, err := store.Routines.GetByID(routineID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if routine == nil {
		t.Fatal("expected routine, got nil")
	}

	if routine.Name != "Push Day" {
		t.Errorf("Name mismatch: got %q", routine.Name)
	}
	if routine.IsPremade {
		t.Error("user routine marked premade")
	}
	if len(routine.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(routine.Exercises))
	}

	ex := routine.Exercises[0]
	if ex.ExerciseID != benchID || ex.ExerciseName != "Bench Press" {
		t.Errorf("unexpected exercise: %+v", ex)
	}
	if len(ex.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(ex.Sets))
	}
	if ex.Sets[0] != (models.Set{SetNumber: 1, Reps: 10, Weight: 135}) {
		t.Errorf("first set mismatch: %+v", ex.Sets[0])
	}
	if ex.Sets[1] != (models.Set{SetNumber: 2, Reps: 8, Weight: 145}) {
		t.Errorf("second set mismatch: %+v", ex.Sets[1])
	}
}

func TestGetRoutineAbsent(t *testing.T) {
	store := setupTestStore(t)

	routine, err := store.Routines.GetByID(42)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if routine != nil {
		t.Errorf("expected nil for absent routine, got %+v", routine)
	}
}

func TestCreateRoutineValidation(t *testing.T) {
	store := setupTestStore(t)
	exID, _ := store.Exercises.Create("Squat")

	cases := []struct {
		name string
		in   models.RoutineInput
	}{
		{"blank name", models.RoutineInput{Name: "  ", Exercises: []models.RoutineExerciseInput{{ExerciseID: exID, Sets: benchSets}}}},
		{"no exercises", models.RoutineInput{Name: "Legs"}},
		{"exercise without sets", models.RoutineInput{Name: "Legs", Exercises: []models.RoutineExerciseInput{{ExerciseID: exID}}}},
		{"zero reps", models.RoutineInput{Name: "Legs", Exercises: []models.RoutineExerciseInput{{ExerciseID: exID, Sets: []models.Set{{SetNumber: 1, Reps: 0, Weight: 100}}}}}},
		{"negative weight", models.RoutineInput{Name: "Legs", Exercises: []models.RoutineExerciseInput{{ExerciseID: exID, Sets: []models.Set{{SetNumber: 1, Reps: 5, Weight: -1}}}}}},
		{"bad set number", models.RoutineInput{Name: "Legs", Exercises: []models.RoutineExerciseInput{{ExerciseID: exID, Sets: []models.Set{{SetNumber: 0, Reps: 5, Weight: 100}}}}}},
	}

	for _, tc := range cases {
		_, err := store.Routines.Create(tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}

	// Nothing should have been written.
	if n := countRows(t, store, "SELECT COUNT(*) FROM routines"); n != 0 {
		t.Errorf("expected 0 routines after failed creates, got %d", n)
	}
}

func TestListUserOrdering(t *testing.T) {
	store := setupTestStore(t)
	exID, _ := store.Exercises.Create("Squat")

	input := func(name string) models.RoutineInput {
		return models.RoutineInput{
			Name:      name,
			Exercises: []models.RoutineExerciseInput{{ExerciseID: exID, Sets: benchSets}},
		}
	}

	firstID, _ := store.Routines.Create(input("First"))
	secondID, _ := store.Routines.Create(input("Second"))

	routines, err := store.Routines.ListUser()
	if err != nil {
		t.Fatalf("ListUser failed: %v", err)
	}
	if len(routines) != 2 {
		t.Fatalf("expected 2 routines, got %d", len(routines))
	}

	// Most recently created first. Both may share a created_at second, so
	// the id tiebreak keeps the order deterministic.
	if routines[0].ID != secondID || routines[1].ID != firstID {
		t.Errorf("expected order [%d %d], got [%d %d]", secondID, firstID, routines[0].ID, routines[1].ID)
	}
	if routines[0].CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated")
	}
	if time.Since(routines[0].CreatedAt) > time.Minute {
		t.Errorf("CreatedAt implausibly old: %v", routines[0].CreatedAt)
	}
}

func TestListFiltersPremadeFlag(t *testing.T) {
	store := setupSeededStore(t)

	// Add one user routine alongside the seeded premades.
	_, err := store.Routines.Create(models.RoutineInput{
		Name:      "My Routine",
		Exercises: []models.RoutineExerciseInput{{ExerciseID: 1, Sets: benchSets}},
	})
	if err != nil {
		t.Fatalf("Create routine failed: %v", err)
	}

	user, err := store.Routines.ListUser()
	if err != nil {
		t.Fatalf("ListUser failed: %v", err)
	}
	for _, routine := range user {
		if routine.IsPremade {
			t.Errorf("ListUser returned premade routine %d", routine.ID)
		}
	}
	if len(user) != 1 {
		t.Errorf("expected 1 user routine, got %d", len(user))
	}

	premade, err := store.Routines.ListPremade()
	if err != nil {
		t.Fatalf("ListPremade failed: %v", err)
	}
	if len(premade) == 0 {
		t.Fatal("expected seeded premade routines")
	}
	for _, routine := range premade {
		if !routine.IsPremade {
			t.Errorf("ListPremade returned user routine %d", routine.ID)
		}
		if len(routine.Exercises) == 0 {
			t.Errorf("premade routine %d not hydrated", routine.ID)
		}
	}
}

func TestDeleteRoutineCascades(t *testing.T) {
	store := setupTestStore(t)

	benchID, _ := store.Exercises.Create("Bench Press")
	squatID, _ := store.Exercises.Create("Squat")

	routineID, err := store.Routines.Create(models.RoutineInput{
		Name: "Full Body",
		Exercises: []models.RoutineExerciseInput{
			{ExerciseID: benchID, Sets: benchSets},
			{ExerciseID: squatID, Sets: benchSets},
		},
	})
	if err != nil {
		t.Fatalf("Create routine failed: %v", err)
	}

	if err := store.Routines.Delete(routineID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if n := countRows(t, store, "SELECT COUNT(*) FROM routines WHERE id = ?", routineID); n != 0 {
		t.Errorf("routine row survived delete")
	}
	if n := countRows(t, store, "SELECT COUNT(*) FROM routine_exercises WHERE routine_id = ?", routineID); n != 0 {
		t.Errorf("expected 0 link rows after delete, got %d", n)
	}
	if n := countRows(t, store, "SELECT COUNT(*) FROM routine_exercise_sets"); n != 0 {
		t.Errorf("expected 0 set rows after delete, got %d", n)
	}
}

func TestDeletePremadeRoutineRefused(t *testing.T) {
	store := setupSeededStore(t)

	premade, err := store.Routines.ListPremade()
	if err != nil {
		t.Fatalf("ListPremade failed: %v", err)
	}
	if len(premade) == 0 {
		t.Fatal("expected seeded premade routines")
	}
	target := premade[0]

	setsBefore := countRows(t, store, "SELECT COUNT(*) FROM routine_exercise_sets")

	err = store.Routines.Delete(target.ID)
	var iv *InvariantViolation
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolation, got %v", err)
	}

	// All rows intact.
	if n := countRows(t, store, "SELECT COUNT(*) FROM routines WHERE id = ?", target.ID); n != 1 {
		t.Error("premade routine row went missing")
	}
	if n := countRows(t, store, "SELECT COUNT(*) FROM routine_exercise_sets"); n != setsBefore {
		t.Errorf("set rows changed: %d -> %d", setsBefore, n)
	}
}

func TestDeleteRoutineNotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.Routines.Delete(42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
