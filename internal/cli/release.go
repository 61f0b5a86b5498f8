package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/linkboard/internal/dependencies/clock"
	"github.com/mcoot/linkboard/internal/release"
)

func newReleaseCmd() *cobra.Command {
	var root, compile string

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Stamp a versioned, integrity-hashed build into 00_build",
		Long: `release reads the current git commit, runs the compile command, hashes
public/js/main.js and writes 00_build/index.html and 00_build/js/main.<hash>.js.

The release id (YYYY-MM-DD-HHMMSS.<commit>, US Central time) replaces the
$$release-id$$ placeholder in index.html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelInfo
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			rc := release.DefaultConfig()
			rc.Root = root
			rc.CompileCommand = strings.Fields(compile)

			stamper := release.NewStamper(rc, release.ExecRunner{Stderr: cmd.ErrOrStderr()}, clock.New(), logger)
			result, err := stamper.Build(cmd.Context())
			if err != nil {
				return err
			}

			outputFor(cmd).Print(ReleaseResult{
				ReleaseID:  result.ReleaseID,
				BuildDir:   result.BuildDir,
				ScriptFile: result.ScriptFile,
				SRIHash:    result.SRIHash,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Project root containing public/ (env: LINKBOARD_ROOT)")
	cmd.Flags().StringVar(&compile, "compile", "", "Command that builds public/js/main.js, empty to skip (env: LINKBOARD_COMPILE)")
	BindEnv(cmd.Flags())

	return cmd
}
