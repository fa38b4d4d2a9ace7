// ABOUTME: CLI commands for the singleton user profile.
// ABOUTME: Supports show, init, and set subcommands with partial updates.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
)

var (
	profileName   string
	profileAge    int
	profileGender string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
	Long: `Manage the single user profile (name, age, gender).

The profile is created once with 'profile init' and then changed field by
field with 'profile set'.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := store.Profile.Get()
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		if profile == nil {
			fmt.Println("No profile yet. Create one with 'liftlog profile init <name> <age> <gender>'.")
			return nil
		}

		fmt.Printf("Name:   %s\n", profile.Name)
		fmt.Printf("Age:    %d\n", profile.Age)
		fmt.Printf("Gender: %s\n", profile.Gender)
		return nil
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init <name> <age> <gender>",
	Short: "Create the profile",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid age: %s", args[1])
		}

		if _, err := store.Profile.Create(args[0], age, args[2]); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		color.Green("✓ Created profile for %s", args[0])
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update any subset of profile fields.

Examples:
  liftlog profile set --age 31
  liftlog profile set --name Alex --gender M`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var update models.ProfileUpdate
		if cmd.Flags().Changed("name") {
			update.Name = &profileName
		}
		if cmd.Flags().Changed("age") {
			update.Age = &profileAge
		}
		if cmd.Flags().Changed("gender") {
			update.Gender = &profileGender
		}

		if err := store.Profile.Update(update); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		color.Green("✓ Updated profile")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "profile name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "profile age")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "profile gender")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
