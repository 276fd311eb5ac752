// Package cli implements the hotelctl command-line interface using
// the Cobra library.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/juhum/hotel-reservations/internal/config"
	"github.com/juhum/hotel-reservations/internal/store"
	"github.com/juhum/hotel-reservations/pkg/database"
)

// NewRootCmd creates the root command and attaches all sub-commands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hotelctl",
		Short: "Admin tooling for the hotel reservation data store",
		Long: `hotelctl bundles the offline data-management tasks: schema
validation of YAML documents, MongoDB import/export and reporting over
the stored hotels, guests and reservations.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newImportCmd(),
		newExportCmd(),
		newReportCmd(),
		newPingCmd(),
	)

	return rootCmd
}

// connect loads the environment configuration and opens the MongoDB
// gateway. The caller owns the returned client and must disconnect it.
func connect() (*mongo.Client, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	return client, store.New(client, cfg.DBName), nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
