package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Board commands",
	}

	cmd.AddCommand(newBoardsCreateCmd())
	cmd.AddCommand(newBoardsGetCmd())
	cmd.AddCommand(newBoardsDeleteCmd())
	cmd.AddCommand(newBoardsZoneCmd())

	return cmd
}

func newBoardsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new board with every player in col1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Post(cmd.Context(), "/api/v1/boards", nil, &result); err != nil {
				return err
			}

			outputFor(cmd).Print(result)
			return nil
		},
	}
}

func newBoardsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <board-id>",
		Short: "Show a board's zones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Get(cmd.Context(), boardPath(args[0]), &result); err != nil {
				return err
			}

			outputFor(cmd).Print(result)
			return nil
		},
	}
}

func newBoardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), boardPath(args[0])); err != nil {
				return err
			}

			outputFor(cmd).PrintMessage(fmt.Sprintf("Deleted board %s", strings.ToUpper(args[0])))
			return nil
		},
	}
}

func newBoardsZoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zone <board-id> <zone>",
		Short: "List the members of one zone, top to bottom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Zone

			if err := client.Get(cmd.Context(), boardPath(args[0], "zones", args[1]), &result); err != nil {
				return err
			}

			outputFor(cmd).Print(result)
			return nil
		},
	}
}
