// ABOUTME: Shared delete-tree helper for the three-level routine and workout hierarchies.
// ABOUTME: Deletes set rows, then link rows; the parent row is the caller's to remove.
package storage

import (
	"database/sql"
	"fmt"
)

// setTree names the two child tables beneath a routine or workout row. Table
// and column names come from the fixed call sites in the repositories, never
// from caller input.
type setTree struct {
	setTable  string // set rows, e.g. routine_exercise_sets
	setFK     string // column on setTable referencing the link row
	linkTable string // link rows, e.g. routine_exercises
	linkFK    string // column on linkTable referencing the parent row
}

var (
	routineTree = setTree{
		setTable:  "routine_exercise_sets",
		setFK:     "routine_exercise_id",
		linkTable: "routine_exercises",
		linkFK:    "routine_id",
	}
	workoutTree = setTree{
		setTable:  "workout_exercises_sets",
		setFK:     "workout_exercise_id",
		linkTable: "workout_exercises",
		linkFK:    "workout_id",
	}
)

// deleteSetTree removes all set rows and link rows beneath parentID, child
// before parent. Runs inside the caller's transaction.
func deleteSetTree(tx *sql.Tx, tree setTree, parentID int64) error {
	delSets := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (SELECT id FROM %s WHERE %s = ?)",
		tree.setTable, tree.setFK, tree.linkTable, tree.linkFK,
	)
	if _, err := tx.Exec(delSets, parentID); err != nil {
		return err
	}

	delLinks := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", tree.linkTable, tree.linkFK)
	_, err := tx.Exec(delLinks, parentID)
	return err
}
