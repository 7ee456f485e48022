package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var manual bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a game through a step-by-step prompt",
		Long: `add walks through recording a game: name, type, players, then either
rankings (points assigned automatically) or manual points, and the date.

With --manual, points are entered directly instead of being derived from
rankings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := "auto"
			if manual {
				mode = "manual"
			}

			conversationID := uuid.NewString()

			var reply ConversationReply
			if err := client.Post(
				fmt.Sprintf("/api/v1/conversations/%s", conversationID),
				map[string]string{"mode": mode},
				&reply,
			); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Println(reply.Prompt)
				fmt.Print("> ")
				if !scanner.Scan() {
					// Input closed mid-flow; drop the server-side session.
					_ = client.Delete(fmt.Sprintf("/api/v1/conversations/%s", conversationID))
					return scanner.Err()
				}

				var next ConversationReply
				err := client.Post(
					fmt.Sprintf("/api/v1/conversations/%s/messages", conversationID),
					map[string]string{"text": scanner.Text()},
					&next,
				)
				if err != nil {
					// Bad input re-prompts the same step.
					out.PrintError(err)
					continue
				}

				reply = next
				if reply.Done {
					fmt.Println(reply.Prompt)
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&manual, "manual", false, "Enter points directly instead of rankings")

	return cmd
}
