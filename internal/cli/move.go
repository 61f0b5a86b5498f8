package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type moveRequest struct {
	Item     string `json:"item"`
	From     string `json:"from"`
	To       string `json:"to"`
	OldIndex int    `json:"old_index"`
	NewIndex int    `json:"new_index"`
}

func newMoveCmd() *cobra.Command {
	var req moveRequest

	cmd := &cobra.Command{
		Use:   "move <board-id> <player-id>",
		Short: "Move a player between zones, as a drag and drop would",
		Example: `  linkboard move ABC123 chrisoakman --from col1 --to linkBox
  linkboard move ABC123 laurenoakman --from col1 --old-index 1 --to col1 --new-index 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.From == "" || req.To == "" {
				return fmt.Errorf("--from and --to are required")
			}
			req.Item = args[1]

			var result MoveResult
			if err := client.Post(cmd.Context(), boardPath(args[0], "moves"), req, &result); err != nil {
				return err
			}

			outputFor(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.From, "from", "", "Source zone (required)")
	cmd.Flags().StringVar(&req.To, "to", "", "Target zone (required)")
	cmd.Flags().IntVar(&req.OldIndex, "old-index", 0, "Index of the player in the source zone")
	cmd.Flags().IntVar(&req.NewIndex, "new-index", 0, "Index to insert at in the target zone")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
