package main

import (
	"context"
	"os"

	"cadcam-storefront/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "catalogd",
		Short:         "CAD/CAM storefront catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with configuration")
	rootCmd.AddCommand(newServeCommand(), newSeedCommand())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("catalogd: %v", err)
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(envFile)
	if err != nil {
		return err
	}

	// Run the application
	app.Run()
	return nil
}

func newSeedCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a demo CAD/CAM catalog into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(envFile)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.Seed(context.Background(), force)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite a non-empty catalog")
	return cmd
}
