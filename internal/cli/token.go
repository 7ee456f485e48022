package cli

import (
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Write token management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Save the write token to the token file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.SaveToken(args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Token saved.")
			return nil
		},
	})

	return cmd
}
