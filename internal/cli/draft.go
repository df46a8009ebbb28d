package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/formdraft/internal/domain"
)

func draftCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or edit the stored draft",
	}

	c.AddCommand(
		draftShowCmd(g),
		draftSetCmd(g),
		draftClearCmd(g),
		draftValidateCmd(g),
	)
	return c
}

func draftShowCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the stored draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			return printDraft(cmd.OutOrStdout(), ws.session.Draft(), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func draftSetCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field>=<value>...",
		Short: "Set one or more draft fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assigns, err := parseAssignments(args)
			if err != nil {
				return err
			}

			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, a := range assigns {
				if err := ws.session.Change(a.field, a.value); err != nil {
					return err
				}
			}
			return printDraft(cmd.OutOrStdout(), ws.session.Draft(), "pretty")
		},
	}
}

func draftClearCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ws.store.Delete(domain.DraftStorageKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared")
			return nil
		},
	}
}

func draftValidateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the stored draft without submitting it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			val := ws.session.Validation()
			if n := printFieldErrors(cmd.OutOrStdout(), val.Errors); n > 0 {
				return fmt.Errorf("draft invalid (%d field(s)): %w", n, domain.ErrInvalidDraft)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Draft is valid")
			return nil
		},
	}
}

type assignment struct {
	field domain.Field
	value string
}

// parseAssignments reads field=value pairs; the value may itself contain '='.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q (want field=value)", arg)
		}
		f, err := domain.ParseField(name)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{field: f, value: value})
	}
	return out, nil
}

func printDraft(w io.Writer, d domain.Draft, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "pretty", "":
		for _, f := range domain.Fields {
			v := d.Get(f)
			if v == "" {
				v = "-"
			}
			fmt.Fprintf(w, "%-14s %s\n", f.Label(), v)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (use pretty|json)", format)
	}
}

// printFieldErrors lists errors in field order and returns how many there were.
func printFieldErrors(w io.Writer, errs domain.FieldErrors) int {
	n := 0
	for _, f := range domain.Fields {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(w, "%-14s %s\n", f.Label(), msg)
			n++
		}
	}
	return n
}
