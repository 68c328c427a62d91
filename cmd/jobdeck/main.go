package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/client/cli"
	"github.com/jobdeck/jobdeck/internal/client/config"
	"github.com/jobdeck/jobdeck/internal/logging"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "jobdeck",
		Short:         "Terminal client for the Job Platform",
		Long:          "jobdeck is an interactive terminal client for the Job Platform:\nbrowse and search postings, apply as an employee, manage postings and\napplications as a recruiter, and administer accounts as an admin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log, err := logging.NewDefault(cfg.LogJSON)
			if err != nil {
				return err
			}

			app, err := cli.NewApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the jobdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("jobdeck", version)
		},
	})

	return root
}
