package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the MongoDB connection and report record counts",
		RunE: func(c *cobra.Command, args []string) error {
			return runPing()
		},
	}
}

func runPing() error {
	client, st, err := connect()
	if err != nil {
		return err
	}
	defer disconnect(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	counts, err := st.RecordCounts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Connected to database %q\n", st.Name())
	fmt.Printf("hotels: %d, guests: %d, reservations: %d\n",
		counts.Hotels, counts.Guests, counts.Reservations)
	return nil
}
