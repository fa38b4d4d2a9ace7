// ABOUTME: Repository interfaces and the Store facade bundling all repositories.
// ABOUTME: Interfaces let consumers swap implementations (e.g., for testing).
package storage

import "liftlog/internal/models"

// ExerciseStore is the exercise catalog contract consumed by screens.
type ExerciseStore interface {
	ListAll() ([]models.Exercise, error)
	Create(name string) (int64, error)
	Rename(id int64, newName string) (bool, error)
	Delete(id int64) (bool, error)
}

// RoutineStore is the routine contract consumed by screens.
type RoutineStore interface {
	Create(in models.RoutineInput) (int64, error)
	ListUser() ([]*models.Routine, error)
	ListPremade() ([]*models.Routine, error)
	GetAll() ([]*models.Routine, error)
	GetByID(id int64) (*models.Routine, error)
	Delete(id int64) error
}

// WorkoutStore is the workout history contract consumed by screens.
type WorkoutStore interface {
	Create(in models.WorkoutInput) (int64, error)
	List() ([]*models.WorkoutSession, error)
	GetByID(id int64) (*models.WorkoutSession, error)
	Update(id int64, in models.WorkoutInput) error
	Delete(id int64) error
}

// ProfileStore is the user profile contract consumed by screens.
type ProfileStore interface {
	Get() (*models.UserProfile, error)
	Create(name string, age int, gender string) (int64, error)
	Update(update models.ProfileUpdate) error
}

// Store bundles one handle with all four repositories. The underlying
// database is opened lazily on the first repository call.
type Store struct {
	Exercises *ExerciseRepo
	Routines  *RoutineRepo
	Workouts  *WorkoutRepo
	Profile   *ProfileRepo

	handle *Handle
}

// Open creates a Store over the database at path.
func Open(path string, opts ...HandleOption) *Store {
	h := NewHandle(path, opts...)
	return &Store{
		Exercises: NewExerciseRepo(h),
		Routines:  NewRoutineRepo(h),
		Workouts:  NewWorkoutRepo(h),
		Profile:   NewProfileRepo(h),
		handle:    h,
	}
}

// Close releases the underlying handle. Safe to call when never opened.
func (s *Store) Close() error {
	return s.handle.Release()
}
