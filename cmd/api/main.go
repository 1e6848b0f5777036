package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/organizer/core/cmd/api/commands"
)

// @title Organizer API
// @version 1.0
// @description Personal productivity backend with tasks, appointments, sharing and messaging

// @contact.name Organizer Support
// @contact.url https://github.com/organizer/core

// @license.name MIT
// @license.url https://github.com/organizer/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "organizer",
		Short: "Organizer API Server",
		Long:  `Organizer is a personal productivity backend with tasks, appointments, item sharing between users, direct messages and user settings.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
