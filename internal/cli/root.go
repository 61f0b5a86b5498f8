package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "linkboard",
		Short: "CLI tool for the linkboard API",
		Long: `linkboard is a CLI tool for the linkboard JSON API.

It can list players, create and inspect boards, move players between zones
and stamp a release build of the static bundle.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	fs := rootCmd.PersistentFlags()
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: LINKBOARD_SERVER)")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: LINKBOARD_OUTPUT)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (env: LINKBOARD_VERBOSE)")
	BindEnv(fs)

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newBoardsCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newReleaseCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		outputFor(cmd).PrintError(err)
		os.Exit(1)
	}
}
