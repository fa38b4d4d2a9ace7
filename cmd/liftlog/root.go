// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Opens the storage handle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"liftlog/internal/config"
	"liftlog/internal/storage"
)

var (
	store   *storage.Store
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Local workout routine and history tracker",
	Long: `Liftlog tracks workout routines and completed workouts in a local
SQLite database.

ROUTINES:

  Routines are reusable templates: an ordered list of exercises, each with
  planned sets of reps at a weight. Five premade routines ship with the tool;
  your own routines live alongside them.

  $ liftlog routine list               # Your routines
  $ liftlog routine list --premade     # Bundled templates
  $ liftlog routine show 7             # Full exercise/set breakdown
  $ liftlog routine add --file r.json  # Create from a JSON file

WORKOUT HISTORY:

  Completed workouts are logged with a time range and the exercises and sets
  actually performed.

  $ liftlog workout log --file w.json
  $ liftlog workout history
  $ liftlog workout delete 3

EXERCISE CATALOG:

  $ liftlog exercise list
  $ liftlog exercise add "Pause Squat"
  $ liftlog exercise rename 41 "Paused Squat"

DATA STORAGE:

  Data lives in a single SQLite file at ~/.local/share/liftlog/liftlog.db.
  Override the directory in ~/.config/liftlog/config.json ("data_dir").
  'liftlog export json' writes a full backup you can replay with 'import'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := zerolog.Nop()
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(zerolog.DebugLevel).
				With().Timestamp().Logger()
		}

		store = cfg.OpenStorage(storage.WithLogger(logger))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
