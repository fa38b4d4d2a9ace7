// ABOUTME: RoutineRepo: CRUD over routines and their nested exercise/set hierarchy.
// ABOUTME: Three-level writes are transactional; premade routines refuse deletion.
package storage

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"liftlog/internal/models"
)

// RoutineRepo provides access to routines and their exercise/set trees.
type RoutineRepo struct {
	h *Handle
}

// NewRoutineRepo creates a RoutineRepo over the given handle.
func NewRoutineRepo(h *Handle) *RoutineRepo {
	return &RoutineRepo{h: h}
}

// Create inserts a user routine with its exercises and sets in one
// transaction and returns the generated routine id. A blank name, an empty
// exercise list, or an invalid set is a ValidationError.
func (r *RoutineRepo) Create(in models.RoutineInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, validationErrorf("routine name must not be empty")
	}
	if len(in.Exercises) == 0 {
		return 0, validationErrorf("routine must have at least one exercise")
	}
	for _, ex := range in.Exercises {
		if ex.ExerciseID <= 0 {
			return 0, validationErrorf("exercise id must be positive, got %d", ex.ExerciseID)
		}
		if err := validateSets(ex.Sets); err != nil {
			return 0, err
		}
	}

	db, err := r.h.Acquire()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, storageErrorf("create routine", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"INSERT INTO routines (name, is_premade, created_at) VALUES (?, 0, ?)",
		in.Name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, storageErrorf("create routine", err)
	}
	routineID, err := res.LastInsertId()
	if err != nil {
		return 0, storageErrorf("create routine", err)
	}

	if err := insertRoutineTree(tx, routineID, in.Exercises); err != nil {
		return 0, storageErrorf("create routine exercises", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErrorf("create routine", err)
	}
	return routineID, nil
}

// insertRoutineTree inserts link and set rows for a routine inside tx.
func insertRoutineTree(tx *sql.Tx, routineID int64, exercises []models.RoutineExerciseInput) error {
	for _, ex := range exercises {
		res, err := tx.Exec(
			"INSERT INTO routine_exercises (routine_id, exercise_id) VALUES (?, ?)",
			routineID, ex.ExerciseID,
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
				"INSERT INTO routine_exercise_sets (routine_exercise_id, set_number, reps, weight) VALUES (?, ?, ?, ?)",
				linkID, set.SetNumber, set.Reps, set.Weight,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ListUser returns user-authored routines, most recently created first, each
// fully hydrated.
func (r *RoutineRepo) ListUser() ([]*models.Routine, error) {
	return r.list(sq.Eq{"is_premade": 0}, "created_at DESC, id DESC")
}

// ListPremade returns the seeded routine templates, fully hydrated.
func (r *RoutineRepo) ListPremade() ([]*models.Routine, error) {
	return r.list(sq.Eq{"is_premade": 1}, "id ASC")
}

// GetAll returns every routine, premade and user, fully hydrated.
func (r *RoutineRepo) GetAll() ([]*models.Routine, error) {
	return r.list(nil, "id ASC")
}

// GetByID returns a single hydrated routine, or nil if absent.
func (r *RoutineRepo) GetByID(id int64) (*models.Routine, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	routine, err := scanRoutineRow(db.QueryRow(
		"SELECT id, name, is_premade, created_at FROM routines WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErrorf("get routine", err)
	}

	if err := hydrateRoutine(db, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// Delete removes a user routine and its whole exercise/set tree, child rows
// first. Premade routines cannot be deleted; a missing id is a NotFoundError.
func (r *RoutineRepo) Delete(id int64) error {
	db, err := r.h.Acquire()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErrorf("delete routine", err)
	}
	defer func() { _ = tx.Rollback() }()

	var isPremade bool
	err = tx.QueryRow("SELECT is_premade FROM routines WHERE id = ?", id).Scan(&isPremade)
	if err == sql.ErrNoRows {
		return &NotFoundError{Entity: "routine", ID: id}
	}
	if err != nil {
		return storageErrorf("delete routine", err)
	}
	if isPremade {
		return &InvariantViolation{Msg: "cannot delete premade routines"}
	}

	if err := deleteSetTree(tx, routineTree, id); err != nil {
		return storageErrorf("delete routine exercises", err)
	}
	if _, err := tx.Exec("DELETE FROM routines WHERE id = ?", id); err != nil {
		return storageErrorf("delete routine", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErrorf("delete routine", err)
	}
	return nil
}

// list fetches routine rows matching where and hydrates each one. The N+1
// fetch pattern is deliberate: catalogs here are tens of rows, not thousands.
func (r *RoutineRepo) list(where any, orderBy string) ([]*models.Routine, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	builder := sq.Select("id", "name", "is_premade", "created_at").
		From("routines").
		OrderBy(orderBy)
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, storageErrorf("build list routines", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErrorf("list routines", err)
	}
	defer rows.Close()

	var routines []*models.Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, storageErrorf("scan routine", err)
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErrorf("list routines", err)
	}

	for _, routine := range routines {
		if err := hydrateRoutine(db, routine); err != nil {
			return nil, err
		}
	}
	return routines, nil
}

// hydrateRoutine loads a routine's exercises and their sets. Exercises whose
// catalog entry was deleted drop out of the join; sets come back in
// set_number order.
func hydrateRoutine(db *sql.DB, routine *models.Routine) error {
	query, args, err := sq.Select("re.id", "re.exercise_id", "e.name").
		From("routine_exercises re").
		Join("exercises e ON e.id = re.exercise_id").
		Where(sq.Eq{"re.routine_id": routine.ID}).
		OrderBy("re.id ASC").
		ToSql()
	if err != nil {
		return storageErrorf("build routine exercises", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return storageErrorf("list routine exercises", err)
	}
	defer rows.Close()

	var exercises []models.RoutineExercise
	for rows.Next() {
		ex := models.RoutineExercise{RoutineID: routine.ID}
		if err := rows.Scan(&ex.ID, &ex.ExerciseID, &ex.ExerciseName); err != nil {
			return storageErrorf("scan routine exercise", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return storageErrorf("list routine exercises", err)
	}

	for i := range exercises {
		sets, err := querySets(db, "routine_exercise_sets", "routine_exercise_id", exercises[i].ID)
		if err != nil {
			return err
		}
		exercises[i].Sets = sets
	}

	routine.Exercises = exercises
	return nil
}

// querySets loads the ordered set list beneath one link row. Shared by the
// routine and workout hydrators; the table names come from fixed call sites.
func querySets(db *sql.DB, table, fkCol string, linkID int64) ([]models.Set, error) {
	query, args, err := sq.Select("set_number", "reps", "weight").
		From(table).
		Where(sq.Eq{fkCol: linkID}).
		OrderBy("set_number ASC").
		ToSql()
	if err != nil {
		return nil, storageErrorf("build sets query", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErrorf("list sets", err)
	}
	defer rows.Close()

	var sets []models.Set
	for rows.Next() {
		var s models.Set
		if err := rows.Scan(&s.SetNumber, &s.Reps, &s.Weight); err != nil {
			return nil, storageErrorf("scan set", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErrorf("list sets", err)
	}
	return sets, nil
}

func scanRoutine(rows *sql.Rows) (*models.Routine, error) {
	var routine models.Routine
	var createdAt string
	if err := rows.Scan(&routine.ID, &routine.Name, &routine.IsPremade, &createdAt); err != nil {
		return nil, err
	}
	routine.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &routine, nil
}

func scanRoutineRow(row *sql.Row) (*models.Routine, error) {
	var routine models.Routine
	var createdAt string
	if err := row.Scan(&routine.ID, &routine.Name, &routine.IsPremade, &createdAt); err != nil {
		return nil, err
	}
	routine.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &routine, nil
}
