// ABOUTME: CLI commands for managing the exercise catalog.
// ABOUTME: Supports list, add, rename, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the exercise catalog referenced by routines and workouts.

The catalog ships pre-seeded with common lifts. Renaming or deleting an
exercise does not touch routines or workouts that reference it: a deleted
exercise simply disappears from their exercise lists.`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := store.Exercises.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			faint.Printf("%4d  ", ex.ID)
			fmt.Println(ex.Name)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.Exercises.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		color.Green("✓ Added exercise %q (id %d)", args[0], id)
		return nil
	},
}

var exerciseRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename an exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		renamed, err := store.Exercises.Rename(id, args[1])
		if err != nil {
			return fmt.Errorf("failed to rename exercise: %w", err)
		}
		if !renamed {
			return fmt.Errorf("exercise %d not found", id)
		}
		color.Green("✓ Renamed exercise %d to %q", id, args[1])
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		deleted, err := store.Exercises.Delete(id)
		if err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		if !deleted {
			return fmt.Errorf("exercise %d not found", id)
		}
		color.Green("✓ Deleted exercise %d", id)
		return nil
	},
}

func init() {
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseRenameCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
