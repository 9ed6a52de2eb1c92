package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbportal/portal/internal/app"
)

func newInitDBCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Drop and recreate the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := application.InitDB(ctx); err != nil {
				return err
			}
			application.Log().Infof("initialized the database")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for schema initialization")
	return cmd
}
