// ABOUTME: ExerciseRepo: CRUD over the flat exercise catalog.
// ABOUTME: Deleting an exercise does not touch routine or workout links referencing it.
package storage

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"liftlog/internal/models"
)

// ExerciseRepo provides access to the exercise catalog.
type ExerciseRepo struct {
	h *Handle
}

// NewExerciseRepo creates an ExerciseRepo over the given handle.
func NewExerciseRepo(h *Handle) *ExerciseRepo {
	return &ExerciseRepo{h: h}
}

// ListAll returns the whole catalog in id order.
func (r *ExerciseRepo) ListAll() ([]models.Exercise, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select("id", "name").
		From("exercises").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, storageErrorf("build list exercises", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErrorf("list exercises", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name); err != nil {
			return nil, storageErrorf("scan exercise", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

// Create inserts a new catalog entry and returns its generated id. A blank
// name is a ValidationError.
func (r *ExerciseRepo) Create(name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationErrorf("exercise name must not be empty")
	}

	db, err := r.h.Acquire()
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Insert("exercises").
		Columns("name").
		Values(name).
		ToSql()
	if err != nil {
		return 0, storageErrorf("build create exercise", err)
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, storageErrorf("create exercise", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErrorf("create exercise", err)
	}
	return id, nil
}

// Rename changes an exercise's name. A missing id is not an error; the
// returned bool tells the caller whether a row was actually updated.
func (r *ExerciseRepo) Rename(id int64, newName string) (bool, error) {
	if strings.TrimSpace(newName) == "" {
		return false, validationErrorf("exercise name must not be empty")
	}

	db, err := r.h.Acquire()
	if err != nil {
		return false, err
	}

	query, args, err := sq.Update("exercises").
		Set("name", newName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, storageErrorf("build rename exercise", err)
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return false, storageErrorf("rename exercise", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErrorf("rename exercise", err)
	}
	return affected > 0, nil
}

// Delete removes a catalog entry and reports whether a row was removed.
// Routine and workout link rows referencing the exercise are left in place;
// hydration joins skip them afterward.
func (r *ExerciseRepo) Delete(id int64) (bool, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return false, err
	}

	res, err := db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return false, storageErrorf("delete exercise", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErrorf("delete exercise", err)
	}
	return affected > 0, nil
}
