// ABOUTME: WorkoutRepo: the completed-workout history log with nested exercise/set results.
// ABOUTME: Update replaces the whole exercise/set tree rather than diffing.
package storage

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"liftlog/internal/models"
)

// WorkoutRepo provides access to the workout history.
type WorkoutRepo struct {
	h *Handle
}

// NewWorkoutRepo creates a WorkoutRepo over the given handle.
func NewWorkoutRepo(h *Handle) *WorkoutRepo {
	return &WorkoutRepo{h: h}
}

// Create logs a completed session with its exercises and sets in one
// transaction and returns the generated session id. Timestamps are stored as
// the caller supplied them.
func (r *WorkoutRepo) Create(in models.WorkoutInput) (int64, error) {
	if err := validateWorkoutInput(in); err != nil {
		return 0, err
	}

	db, err := r.h.Acquire()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, storageErrorf("create workout", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"INSERT INTO workout (started_at, ended_at, notes) VALUES (?, ?, ?)",
		in.StartDateTime, in.EndDateTime, in.Notes,
	)
	if err != nil {
		return 0, storageErrorf("create workout", err)
	}
	workoutID, err := res.LastInsertId()
	if err != nil {
		return 0, storageErrorf("create workout", err)
	}

	if err := insertWorkoutTree(tx, workoutID, in.Exercises); err != nil {
		return 0, storageErrorf("create workout exercises", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErrorf("create workout", err)
	}
	return workoutID, nil
}

// List returns the full history, most recent session first, fully hydrated.
func (r *WorkoutRepo) List() ([]*models.WorkoutSession, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, started_at, ended_at, notes FROM workout ORDER BY datetime(started_at) DESC",
	)
	if err != nil {
		return nil, storageErrorf("list workouts", err)
	}
	defer rows.Close()

	var sessions []*models.WorkoutSession
	for rows.Next() {
		session, err := scanWorkout(rows)
		if err != nil {
			return nil, storageErrorf("scan workout", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErrorf("list workouts", err)
	}

	for _, session := range sessions {
		if err := hydrateWorkout(db, session); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// GetByID returns a single hydrated session, or nil if absent.
func (r *WorkoutRepo) GetByID(id int64) (*models.WorkoutSession, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	session, err := scanWorkoutRow(db.QueryRow(
		"SELECT id, started_at, ended_at, notes FROM workout WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErrorf("get workout", err)
	}

	if err := hydrateWorkout(db, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update replaces the session's scalar fields and its entire exercise/set
// tree in one transaction. A missing id is a NotFoundError.
func (r *WorkoutRepo) Update(id int64, in models.WorkoutInput) error {
	if err := validateWorkoutInput(in); err != nil {
		return err
	}

	db, err := r.h.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErrorf("update workout", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"UPDATE workout SET started_at = ?, ended_at = ?, notes = ? WHERE id = ?",
		in.StartDateTime, in.EndDateTime, in.Notes, id,
	)
	if err != nil {
		return storageErrorf("update workout", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErrorf("update workout", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "workout", ID: id}
	}

	if err := deleteSetTree(tx, workoutTree, id); err != nil {
		return storageErrorf("replace workout exercises", err)
	}
	if err := insertWorkoutTree(tx, id, in.Exercises); err != nil {
		return storageErrorf("replace workout exercises", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErrorf("update workout", err)
	}
	return nil
}

// Delete removes a session and its exercise/set tree, child rows first.
func (r *WorkoutRepo) Delete(id int64) error {
	db, err := r.h.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErrorf("delete workout", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteSetTree(tx, workoutTree, id); err != nil {
		return storageErrorf("delete workout exercises", err)
	}

	res, err := tx.Exec("DELETE FROM workout WHERE id = ?", id)
	if err != nil {
		return storageErrorf("delete workout", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErrorf("delete workout", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "workout", ID: id}
	}

	if err := tx.Commit(); err != nil {
		return storageErrorf("delete workout", err)
	}
	return nil
}

func validateWorkoutInput(in models.WorkoutInput) error {
	if strings.TrimSpace(in.StartDateTime) == "" {
		return validationErrorf("workout start time must not be empty")
	}
	if strings.TrimSpace(in.EndDateTime) == "" {
		return validationErrorf("workout end time must not be empty")
	}
	for _, ex := range in.Exercises {
		if ex.ExerciseID <= 0 {
			return validationErrorf("exercise id must be positive, got %d", ex.ExerciseID)
		}
		if err := validateSets(ex.Sets); err != nil {
			return err
		}
	}
	return nil
}

// insertWorkoutTree inserts link and set rows for a session inside tx.
func insertWorkoutTree(tx *sql.Tx, workoutID int64, exercises []models.WorkoutExerciseInput) error {
	for _, ex := range exercises {
		res, err := tx.Exec(
			"INSERT INTO workout_exercises (workout_id, exercise_id) VALUES (?, ?)",
			workoutID, ex.ExerciseID,
		)
		if err != nil {
			return err
		}
		linkID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, set := range ex.Sets {
			_, err := tx.Exec(
				"INSERT INTO workout_exercises_sets (workout_exercise_id, set_number, reps, weight) VALUES (?, ?, ?, ?)",
				linkID, set.SetNumber, set.Reps, set.Weight,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// hydrateWorkout loads a session's exercises and their sets, sets in
// set_number order.
func hydrateWorkout(db *sql.DB, session *models.WorkoutSession) error {
	query, args, err := sq.Select("we.id", "we.exercise_id", "e.name").
		From("workout_exercises we").
		Join("exercises e ON e.id = we.exercise_id").
		Where(sq.Eq{"we.workout_id": session.ID}).
		OrderBy("we.id ASC").
		ToSql()
	if err != nil {
		return storageErrorf("build workout exercises", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return storageErrorf("list workout exercises", err)
	}
	defer rows.Close()

	var exercises []models.WorkoutExercise
	for rows.Next() {
		ex := models.WorkoutExercise{WorkoutID: session.ID}
		if err := rows.Scan(&ex.ID, &ex.ExerciseID, &ex.ExerciseName); err != nil {
			return storageErrorf("scan workout exercise", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return storageErrorf("list workout exercises", err)
	}

	for i := range exercises {
		sets, err := querySets(db, "workout_exercises_sets", "workout_exercise_id", exercises[i].ID)
		if err != nil {
			return err
		}
		exercises[i].Sets = sets
	}

	session.Exercises = exercises
	return nil
}

func scanWorkout(rows *sql.Rows) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	var notes sql.NullString
	if err := rows.Scan(&session.ID, &session.StartDateTime, &session.EndDateTime, &notes); err != nil {
		return nil, err
	}
	if notes.Valid {
		session.Notes = &notes.String
	}
	return &session, nil
}

func scanWorkoutRow(row *sql.Row) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	var notes sql.NullString
	if err := row.Scan(&session.ID, &session.StartDateTime, &session.EndDateTime, &notes); err != nil {
		return nil, err
	}
	if notes.Valid {
		session.Notes = &notes.String
	}
	return &session, nil
}
