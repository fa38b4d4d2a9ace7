// ABOUTME: Input validation shared by the routine and workout repositories.
// ABOUTME: Enforces the set-shape invariants: setNumber >= 1, reps > 0, weight >= 0.
package storage

import "liftlog/internal/models"

func validateSets(sets []models.Set) error {
	if len(sets) == 0 {
		return validationErrorf("exercise must have at least one set")
	}
	for _, s := range sets {
		if s.SetNumber < 1 {
			return validationErrorf("set number must be >= 1, got %d", s.SetNumber)
		}
		if s.Reps <= 0 {
			return validationErrorf("set %d: reps must be > 0, got %d", s.SetNumber, s.Reps)
		}
		if s.Weight < 0 {
			return validationErrorf("set %d: weight must be >= 0, got %v", s.SetNumber, s.Weight)
		}
	}
	return nil
}
