package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/taskflow/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: load .env: %v", err)
	}

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskflow",
		Short:         "TaskFlow - academic task calendar with reminders",
		RunE:          runServeCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder dispatcher",
		RunE:  runServeCommand,
	})
	root.AddCommand(&cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for the registered account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunResetPasswordCommand(cmd.Context(), getEnv("DB_PATH", defaultDBPath()))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "authorize-calendar",
		Short: "Authorize Google Calendar access for the google reminder backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.RunAuthorizeCalendarCommand(cmd.Context(), cfg.CredentialsFile, cfg.TokenFile, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})
	return root
}

func runServeCommand(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runServe(cfg)
}
