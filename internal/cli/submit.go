package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/formdraft/internal/domain"
)

func submitCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit the stored draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			ack, err := ws.session.Submit(cmd.Context())
			if err != nil {
				if domain.IsKind(err, domain.KindValidation) {
					printFieldErrors(out, ws.session.Validation().Errors)
				} else {
					fmt.Fprintln(out, domain.ErrorNoticeText)
				}
				return err
			}

			fmt.Fprintln(out, domain.SuccessNoticeText)
			if ack.Message != "" {
				fmt.Fprintf(out, "Endpoint: %d %s\n", ack.StatusCode, ack.Message)
			}
			return nil
		},
	}
}
