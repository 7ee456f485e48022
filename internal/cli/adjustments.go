package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdjustmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjustments",
		Short: "Adjustment ledger commands",
	}

	cmd.AddCommand(newAdjustmentsListCmd())
	cmd.AddCommand(newAdjustmentsRemoveCmd())

	return cmd
}

func newAdjustmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all manual adjustments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AdjustmentsResult

			if err := client.Get("/api/v1/adjustments", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdjustmentsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <adjustment-id>",
		Short: "Remove a manual adjustment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/adjustments/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Adjustment %s removed.", id))
			return nil
		},
	}
}
