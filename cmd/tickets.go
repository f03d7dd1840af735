package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zyarat-mobile/zyarat/internal/events"
	"github.com/zyarat-mobile/zyarat/internal/tickets"
)

func newTicketsCmd() *cobra.Command {
	var eventsPath string

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Browse events and reserve visit tickets",
	}
	cmd.PersistentFlags().StringVar(&eventsPath, "events", "", "Path to an events catalog file (YAML); built-in catalog when empty")

	cmd.AddCommand(newTicketsEventsCmd(&eventsPath))
	cmd.AddCommand(newTicketsReserveCmd(&eventsPath))

	return cmd
}

func newTicketsEventsCmd(eventsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List visitable sites and their ticket prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := events.LoadCatalog(*eventsPath)
			if err != nil {
				return err
			}

			for _, e := range catalog.All() {
				price := "Free"
				if !e.Free() {
					price = fmt.Sprintf("%.2f TND", e.Price)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s — %s (%s)\n", e.ID, e.Title, e.Location, price)
			}
			return nil
		},
	}
}

func newTicketsReserveCmd(eventsPath *string) *cobra.Command {
	var eventID string
	var dateStr string
	var quantity int

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve tickets for an event",
		Long: `Confirms a ticket purchase: one reservation per unit, each with its own
redemption code. The visit date must be today or later.`,
		Example: `  # Two tickets for El Jem next week
  zyarat tickets reserve --event el-jem --date 2026-09-05 --quantity 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := events.LoadCatalog(*eventsPath)
			if err != nil {
				return err
			}
			event, ok := catalog.Get(eventID)
			if !ok {
				return fmt.Errorf("unknown event %q, expected one of: %s", eventID, strings.Join(catalog.IDs(), ", "))
			}

			date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateStr, err)
			}

			store := tickets.New()
			created, err := store.Reserve(tickets.EventInfo{
				ID:       event.ID,
				Title:    event.Title,
				Location: event.Location,
				ImageURL: event.ImageURL,
			}, date, event.Price, quantity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reserved %d ticket%s for %s on %s\n",
				len(created), plural(len(created)), event.Title, date.Format("2006-01-02"))
			for _, r := range created {
				fmt.Fprintf(out, "  %s  %s\n", r.ID, r.RedemptionCode)
			}

			total := event.Price * float64(quantity)
			if total == 0 {
				fmt.Fprintln(out, "Total: Free")
			} else {
				fmt.Fprintf(out, "Total: %.2f TND\n", total)
			}
			fmt.Fprintf(out, "Upcoming visits: %d\n", store.UpcomingCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&eventID, "event", "", "Event id (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Visit date, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Number of tickets")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
