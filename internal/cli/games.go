package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game ledger commands",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesRemoveCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GamesResult

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Remove a recorded game and all its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Game %s removed.", id))
			return nil
		},
	}
}
