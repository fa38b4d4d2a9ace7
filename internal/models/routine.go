// ABOUTME: Routine models: reusable workout templates with nested exercises and sets.
// ABOUTME: Distinguishes user-authored routines from immutable premade templates.
package models

import "time"

// Routine is a named, reusable template of exercises and planned sets.
// Premade routines are seeded once and cannot be deleted.
type Routine struct {
	ID        int64             `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	IsPremade bool              `json:"isPremade" yaml:"isPremade"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
	Exercises []RoutineExercise `json:"exercises" yaml:"exercises"`
}

// RoutineExercise links a routine to a catalog exercise and owns the planned
// sets for it. It has no lifecycle of its own: it is created and destroyed
// with its parent routine.
type RoutineExercise struct {
	ID           int64  `json:"id" yaml:"id"`
	RoutineID    int64  `json:"routineId" yaml:"routineId"`
	ExerciseID   int64  `json:"exerciseId" yaml:"exerciseId"`
	ExerciseName string `json:"exerciseName" yaml:"exerciseName"`
	Sets         []Set  `json:"sets" yaml:"sets"`
}

// RoutineInput is the caller-supplied shape for creating a routine.
type RoutineInput struct {
	Name      string                 `json:"name" yaml:"name"`
	Exercises []RoutineExerciseInput `json:"exercises" yaml:"exercises"`
}

// RoutineExerciseInput is one exercise entry within a RoutineInput.
type RoutineExerciseInput struct {
	ExerciseID int64 `json:"exerciseId" yaml:"exerciseId"`
	Sets       []Set `json:"sets" yaml:"sets"`
}
