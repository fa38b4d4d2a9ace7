// ABOUTME: Workout session models for the completed-workout history log.
// ABOUTME: Timestamps are opaque ISO-8601 strings supplied by the caller.
package models

// WorkoutSession is a record of an actually-performed workout. The start and
// end timestamps are stored and returned exactly as the caller supplied them;
// the data layer never reinterprets their timezone.
type WorkoutSession struct {
	ID            int64             `json:"id" yaml:"id"`
	StartDateTime string            `json:"startDateTime" yaml:"startDateTime"`
	EndDateTime   string            `json:"endDateTime" yaml:"endDateTime"`
	Notes         *string           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Exercises     []WorkoutExercise `json:"exercises" yaml:"exercises"`
}

// WorkoutExercise links a session to a catalog exercise and owns the sets
// actually performed. Created and destroyed with its parent session.
type WorkoutExercise struct {
	ID           int64  `json:"id" yaml:"id"`
	WorkoutID    int64  `json:"workoutId" yaml:"workoutId"`
	ExerciseID   int64  `json:"exerciseId" yaml:"exerciseId"`
	ExerciseName string `json:"exerciseName" yaml:"exerciseName"`
	Sets         []Set  `json:"sets" yaml:"sets"`
}

// WorkoutInput is the caller-supplied shape for logging or editing a session.
type WorkoutInput struct {
	StartDateTime string                 `json:"startDateTime" yaml:"startDateTime"`
	EndDateTime   string                 `json:"endDateTime" yaml:"endDateTime"`
	Notes         *string                `json:"notes,omitempty" yaml:"notes,omitempty"`
	Exercises     []WorkoutExerciseInput `json:"exercises" yaml:"exercises"`
}

// WorkoutExerciseInput is one exercise entry within a WorkoutInput.
type WorkoutExerciseInput struct {
	ExerciseID int64 `json:"exerciseId" yaml:"exerciseId"`
	Sets       []Set `json:"sets" yaml:"sets"`
}
