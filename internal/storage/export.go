// ABOUTME: Snapshot export and import for the whole store.
// ABOUTME: Supports JSON and YAML; import replays a snapshot without duplicating seed data.
package storage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"liftlog/internal/models"
)

// Snapshot is the full export format: catalog, routines, history, profile.
type Snapshot struct {
	SnapshotID uuid.UUID                `json:"snapshot_id" yaml:"snapshot_id"`
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Exercises  []models.Exercise        `json:"exercises" yaml:"exercises"`
	Routines   []*models.Routine        `json:"routines" yaml:"routines"`
	Workouts   []*models.WorkoutSession `json:"workouts" yaml:"workouts"`
	Profile    *models.UserProfile      `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// ExportAll assembles a snapshot of everything in the store.
func (s *Store) ExportAll() (*Snapshot, error) {
	exercises, err := s.Exercises.ListAll()
	if err != nil {
		return nil, err
	}
	routines, err := s.Routines.GetAll()
	if err != nil {
		return nil, err
	}
	workouts, err := s.Workouts.List()
	if err != nil {
		return nil, err
	}
	profile, err := s.Profile.Get()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		SnapshotID: uuid.New(),
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "liftlog",
		Exercises:  exercises,
		Routines:   routines,
		Workouts:   workouts,
		Profile:    profile,
	}, nil
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	snap, err := s.ExportAll()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	snap, err := s.ExportAll()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(snap)
}

// ImportAll replays a snapshot into the store. Catalog entries keep their
// ids, with rows that already exist left untouched; premade routines are
// skipped because a fresh store is already seeded with them. Routines and
// workouts get new generated ids.
func (s *Store) ImportAll(snap *Snapshot) error {
	db, err := s.handle.Acquire()
	if err != nil {
		return err
	}

	for _, ex := range snap.Exercises {
		_, err := db.Exec("INSERT OR IGNORE INTO exercises (id, name) VALUES (?, ?)", ex.ID, ex.Name)
		if err != nil {
			return storageErrorf("import exercise", err)
		}
	}

	for _, routine := range snap.Routines {
		if routine.IsPremade {
			continue
		}
		in := models.RoutineInput{Name: routine.Name}
		for _, ex := range routine.Exercises {
			in.Exercises = append(in.Exercises, models.RoutineExerciseInput{
				ExerciseID: ex.ExerciseID,
				Sets:       ex.Sets,
			})
		}
		if _, err := s.Routines.Create(in); err != nil {
			return err
		}
	}

	for _, session := range snap.Workouts {
		in := models.WorkoutInput{
			StartDateTime: session.StartDateTime,
			EndDateTime:   session.EndDateTime,
			Notes:         session.Notes,
		}
		for _, ex := range session.Exercises {
			in.Exercises = append(in.Exercises, models.WorkoutExerciseInput{
				ExerciseID: ex.ExerciseID,
				Sets:       ex.Sets,
			})
		}
		if _, err := s.Workouts.Create(in); err != nil {
			return err
		}
	}

	if snap.Profile != nil {
		existing, err := s.Profile.Get()
		if err != nil {
			return err
		}
		if existing == nil {
			if _, err := s.Profile.Create(snap.Profile.Name, snap.Profile.Age, snap.Profile.Gender); err != nil {
				return err
			}
		}
	}

	return nil
}

// ImportJSON imports a JSON snapshot produced by ExportJSON.
func (s *Store) ImportJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return validationErrorf("parse snapshot: %v", err)
	}
	return s.ImportAll(&snap)
}
