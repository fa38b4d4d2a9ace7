// ABOUTME: CLI commands for the workout history log.
// ABOUTME: Supports log-from-file, history, edit, and delete subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
)

var workoutFile string

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout history",
	Long: `Log completed workouts and browse the history.

A workout is a time range plus the exercises and sets actually performed,
supplied as a JSON file shaped like:

  {
    "startDateTime": "2026-08-28T18:00:00",
    "endDateTime": "2026-08-28T19:05:00",
    "notes": "felt strong",
    "exercises": [
      {
        "exerciseId": 1,
        "sets": [
          { "setNumber": 1, "reps": 10, "weight": 135 }
        ]
      }
    ]
  }

Timestamps are stored exactly as given; liftlog never rewrites them.`,
}

var workoutLogCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"add"},
	Short:   "Log a completed workout from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutFile == "" {
			return fmt.Errorf("--file is required")
		}

		in, err := readWorkoutFile(workoutFile)
		if err != nil {
			return err
		}

		id, err := store.Workouts.Create(*in)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}
		color.Green("✓ Logged workout (id %d)", id)
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls"},
	Short:   "List workout history, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := store.Workouts.List()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No workouts logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, session := range sessions {
			faint.Printf("%4d  ", session.ID)
			fmt.Printf("%s → %s", session.StartDateTime, session.EndDateTime)
			faint.Printf("  %d exercises", len(session.Exercises))
			if session.Notes != nil && *session.Notes != "" {
				faint.Printf("  %q", *session.Notes)
			}
			fmt.Println()
			for _, ex := range session.Exercises {
				fmt.Printf("      %s", ex.ExerciseName)
				faint.Printf("  %d sets\n", len(ex.Sets))
			}
		}
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a logged workout with the contents of a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workout id: %s", args[0])
		}
		if workoutFile == "" {
			return fmt.Errorf("--file is required")
		}

		in, err := readWorkoutFile(workoutFile)
		if err != nil {
			return err
		}

		if err := store.Workouts.Update(id, *in); err != nil {
			return fmt.Errorf("failed to edit workout: %w", err)
		}
		color.Green("✓ Updated workout %d", id)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout and all its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workout id: %s", args[0])
		}

		if err := store.Workouts.Delete(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		color.Green("✓ Deleted workout %d", id)
		return nil
	},
}

func readWorkoutFile(path string) (*models.WorkoutInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workout file: %w", err)
	}

	var in models.WorkoutInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse workout file: %w", err)
	}
	return &in, nil
}

func init() {
	workoutLogCmd.Flags().StringVarP(&workoutFile, "file", "f", "", "JSON file describing the workout")
	workoutEditCmd.Flags().StringVarP(&workoutFile, "file", "f", "", "JSON file describing the workout")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
