package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mytheresa/go-inventory/app"
	"github.com/mytheresa/go-inventory/app/console"
	"github.com/mytheresa/go-inventory/database"
	"github.com/spf13/cobra"
)

// consoleCmd runs the interactive product menu on stdin/stdout
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive product menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := database.Open(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Warn("Failed to close database")
			}
		}()

		svc := app.NewServices(db, log)
		return console.New(os.Stdin, os.Stdout, svc.Products, svc.Categories, log).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
