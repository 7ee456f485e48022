package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAdjustCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "adjust <player> <points> [reason...]",
		Short: "Add or remove points for a player outside a game",
		Long: `adjust records a signed point correction, e.g.:

  tally adjust bob -3 tardiness
  tally adjust alice 3 national service

A leading '-' on points subtracts. Adjustments count toward the overall
leaderboard but never toward solo-only standings.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player := args[0]

			points, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("points must be a number, got %q", args[1])
			}

			reason := strings.Join(args[2:], " ")

			req := map[string]any{
				"player": player,
				"points": points,
				"reason": reason,
				"date":   date,
			}
			var result Adjustment

			if err := client.Post("/api/v1/adjustments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the adjustment (YYYY-MM-DD or 'today')")

	return cmd
}
