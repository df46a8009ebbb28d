package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/formdraft/internal/infra/fsworkspace"
	"github.com/aalvaropc/formdraft/internal/usecase"
)

func initCmd(g *globalFlags) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create formdraft.yaml and .gitignore entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			if target == "" {
				target = g.workspace
			}
			if target == "" {
				target = "."
			}
			root, err := resolveWorkspaceRoot(target)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Target directory (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
