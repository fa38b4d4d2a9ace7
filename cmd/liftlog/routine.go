// ABOUTME: CLI commands for managing workout routines.
// ABOUTME: Supports list, show, add-from-file, and delete subcommands.
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

var (
	routinePremade bool
	routineFile    string
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage workout routines",
	Long: `Manage workout routines: reusable templates of exercises with planned
sets of reps at a weight.

Premade routines are bundled templates and cannot be deleted. Your own
routines are created from a JSON file shaped like:

  {
    "name": "Push Day",
    "exercises": [
      {
        "exerciseId": 1,
        "sets": [
          { "setNumber": 1, "reps": 10, "weight": 135 },
          { "setNumber": 2, "reps": 8, "weight": 145 }
        ]
      }
    ]
  }`,
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			routines []*models.Routine
			err      error
		)
		if routinePremade {
			routines, err = store.Routines.ListPremade()
		} else {
			routines, err = store.Routines.ListUser()
		}
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}

		if len(routines) == 0 {
			fmt.Println("No routines found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, routine := range routines {
			faint.Printf("%4d  ", routine.ID)
			fmt.Printf("%-24s", routine.Name)
			faint.Printf("  %d exercises\n", len(routine.Exercises))
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a routine with its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}

		routine, err := store.Routines.GetByID(id)
		if err != nil {
			return fmt.Errorf("failed to get routine: %w", err)
		}
		if routine == nil {
			return fmt.Errorf("routine %d not found", id)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Print(routine.Name)
		if routine.IsPremade {
			faint.Print("  (premade)")
		}
		fmt.Println()

		for _, ex := range routine.Exercises {
			fmt.Printf("  %s\n", ex.ExerciseName)
			for _, set := range ex.Sets {
				faint.Printf("    set %d: %d reps @ %g\n", set.SetNumber, set.Reps, set.Weight)
			}
		}
		return nil
	},
}

var routineAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a routine from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if routineFile == "" {
			return fmt.Errorf("--file is required")
		}

		data, err := os.ReadFile(routineFile)
		if err != nil {
			return fmt.Errorf("read routine file: %w", err)
		}

		var in models.RoutineInput
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("parse routine file: %w", err)
		}

		id, err := store.Routines.Create(in)
		if err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}
		color.Green("✓ Created routine %q (id %d)", in.Name, id)
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a routine and all its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}

		if err := store.Routines.Delete(id); err != nil {
			return fmt.Errorf("failed to delete routine: %w", err)
		}
		color.Green("✓ Deleted routine %d", id)
		return nil
	},
}

func init() {
	routineListCmd.Flags().BoolVar(&routinePremade, "premade", false, "list premade routines instead of yours")
	routineAddCmd.Flags().StringVarP(&routineFile, "file", "f", "", "JSON file describing the routine")

	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	rootCmd.AddCommand(routineCmd)
}
