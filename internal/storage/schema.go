// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the routine, workout history, catalog, and profile tables.
package storage

import "database/sql"

// ensureSchema creates all tables if they do not exist. Safe to run on every
// open. Deletes cascade explicitly in the repositories, child before parent;
// the foreign keys here document ownership rather than drive cleanup.
// exercise_id columns are deliberately not declared as foreign keys: deleting
// a catalog entry leaves link rows dangling, and hydration joins drop them.
func ensureSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS routines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		is_premade INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS routine_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		routine_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		FOREIGN KEY (routine_id) REFERENCES routines(id)
	);

	CREATE TABLE IF NOT EXISTS routine_exercise_sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		routine_exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		FOREIGN KEY (routine_exercise_id) REFERENCES routine_exercises(id)
	);

	CREATE TABLE IF NOT EXISTS workout (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS workout_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workout(id)
	);

	CREATE TABLE IF NOT EXISTS workout_exercises_sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id)
	);

	CREATE TABLE IF NOT EXISTS user_profile (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_routines_premade ON routines(is_premade);
	CREATE INDEX IF NOT EXISTS idx_routine_exercises_routine ON routine_exercises(routine_id);
	CREATE INDEX IF NOT EXISTS idx_routine_sets_exercise ON routine_exercise_sets(routine_exercise_id);
	CREATE INDEX IF NOT EXISTS idx_workout_started ON workout(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_exercises_sets(workout_exercise_id);
	`

	_, err := db.Exec(schema)
	return err
}
