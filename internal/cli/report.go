package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juhum/hotel-reservations/internal/export"
	"github.com/juhum/hotel-reservations/pkg/utils"
)

type ReportOptions struct {
	GuestEmail string
}

func newReportCmd() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print availability, pricing and reservation summaries",
		RunE: func(c *cobra.Command, args []string) error {
			return runReport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.GuestEmail, "guest", "g", "", "Also list reservations for this guest email")

	return cmd
}

func runReport(opts *ReportOptions) error {
	client, st, err := connect()
	if err != nil {
		return err
	}
	defer disconnect(client)

	ctx := context.Background()

	rooms, err := st.AvailableRooms(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{r.Hotel, r.Location, r.Number, r.Type, r.Price})
	}
	fmt.Println("Available rooms:")
	fmt.Println(export.Table([]string{"Hotel", "Location", "Room", "Type", "Price"}, rows))

	averages, err := st.AverageRoomPrice(ctx)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, a := range averages {
		rows = append(rows, []string{a.Name, fmt.Sprintf("%.2f", a.AveragePrice)})
	}
	fmt.Println("Average room price per hotel:")
	fmt.Println(export.Table([]string{"Hotel", "Average price"}, rows))

	if opts.GuestEmail != "" {
		reservations, err := st.GuestReservations(ctx, opts.GuestEmail)
		if err != nil {
			return err
		}
		rows = rows[:0]
		for _, res := range reservations {
			rows = append(rows, []string{
				utils.Stringify(res["hotel_name"]),
				utils.Stringify(res["room_number"]),
				utils.Stringify(res["start_date"]),
				utils.Stringify(res["end_date"]),
				utils.Stringify(res["status"]),
			})
		}
		fmt.Printf("Reservations for %s:\n", opts.GuestEmail)
		fmt.Println(export.Table([]string{"Hotel", "Room", "From", "To", "Status"}, rows))
	}

	statuses, err := st.ReservationStatusCounts(ctx)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, s := range statuses {
		rows = append(rows, []string{s.Status, fmt.Sprintf("%d", s.Count)})
	}
	fmt.Println("Reservations by status:")
	fmt.Println(export.Table([]string{"Status", "Count"}, rows))

	return nil
}
