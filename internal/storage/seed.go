// ABOUTME: Idempotent seeding of the exercise catalog and premade routines.
// ABOUTME: Fixtures are embedded JSON; seeding is keyed on table row counts.
package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

//go:embed seeddata/exercises.json seeddata/premade_routines.json
var seedFS embed.FS

type seedExercise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type seedRoutine struct {
	Name      string `json:"name"`
	Exercises []struct {
		ExerciseID int64 `json:"exerciseId"`
		Sets       []struct {
			Reps   int     `json:"reps"`
			Weight float64 `json:"weight"`
		} `json:"sets"`
	} `json:"exercises"`
}

// seedReferenceData inserts the bundled exercise catalog and premade routine
// templates, each only when its table is empty. Exercises go first: routines
// reference catalog ids. Premade rows are marked with is_premade, never by
// id range.
func seedReferenceData(db *sql.DB, log zerolog.Logger) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedExercises(tx, log); err != nil {
		return err
	}
	if err := seedPremadeRoutines(tx, log); err != nil {
		return err
	}

	return tx.Commit()
}

func seedExercises(tx *sql.Tx, log zerolog.Logger) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM exercises").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := seedFS.ReadFile("seeddata/exercises.json")
	if err != nil {
		return err
	}
	var exercises []seedExercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return err
	}

	for _, ex := range exercises {
		if _, err := tx.Exec("INSERT INTO exercises (id, name) VALUES (?, ?)", ex.ID, ex.Name); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(exercises)).Msg("seeded exercise catalog")
	return nil
}

func seedPremadeRoutines(tx *sql.Tx, log zerolog.Logger) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM routines").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := seedFS.ReadFile("seeddata/premade_routines.json")
	if err != nil {
		return err
	}
	var routines []seedRoutine
	if err := json.Unmarshal(data, &routines); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, routine := range routines {
		res, err := tx.Exec(
			"INSERT INTO routines (name, is_premade, created_at) VALUES (?, 1, ?)",
			routine.Name, now,
		)
		if err != nil {
			return err
		}
		routineID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for _, ex := range routine.Exercises {
			linkRes, err := tx.Exec(
				"INSERT INTO routine_exercises (routine_id, exercise_id) VALUES (?, ?)",
				routineID, ex.ExerciseID,
			)
			if err != nil {
				return err
			}
			linkID, err := linkRes.LastInsertId()
			if err != nil {
				return err
			}

			for i, set := range ex.Sets {
				_, err := tx.Exec(
					"INSERT INTO routine_exercise_sets (routine_exercise_id, set_number, reps, weight) VALUES (?, ?, ?, ?)",
					linkID, i+1, set.Reps, set.Weight,
				)
				if err != nil {
					return err
				}
			}
		}
	}
	log.Info().Int("count", len(routines)).Msg("seeded premade routines")
	return nil
}
