package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func themeCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the stored theme",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current theme",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ws, cleanup, err := openWorkspace(g, nil)
				if err != nil {
					return err
				}
				defer cleanup()

				fmt.Fprintln(cmd.OutOrStdout(), ws.session.Theme())
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ws, cleanup, err := openWorkspace(g, nil)
				if err != nil {
					return err
				}
				defer cleanup()

				fmt.Fprintln(cmd.OutOrStdout(), ws.session.ToggleTheme())
				return nil
			},
		},
	)
	return c
}
