// Package commands defines the portal CLI.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nbportal/portal/internal/config"
)

var (
	envFile    string
	configFile string
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "Notebook publishing web application",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; an explicitly named one must exist.
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return err
				}
			} else {
				_ = godotenv.Load()
			}
			if configFile != "" {
				os.Setenv(config.EnvConfigFile, configFile)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file to load")
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file overriding "+config.EnvConfigFile)

	root.AddCommand(newServeCommand())
	root.AddCommand(newInitDBCommand())

	return root.Execute()
}
