package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/formdraft/internal/ui/tui"
)

// globalFlags are shared by every command through persistent flags.
type globalFlags struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "formdraft",
		Short:        "formdraft: a terminal contact form with local drafts",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(tui.Deps{
				Session:       ws.session,
				WorkspaceRoot: ws.root,
				NoticeTTL:     ws.cfg.Notice.SuccessTTL,
				Logger:        ws.log,
				Debug:         g.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .formdraft/logs/formdraft.log")

	cmd.AddCommand(
		serveCmd(g),
		initCmd(g),
		draftCmd(g),
		submitCmd(g),
		themeCmd(g),
		versionCmd(),
	)
	return cmd
}
