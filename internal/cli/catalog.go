package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kryva/kryva/internal/catalog"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	descStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).PaddingLeft(4)
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog [list]",
		Short: "Print the onboarding option lists",
		Long:  "Print every onboarding option list, or only the named one. Lists: " + strings.Join(catalog.Names(), ", ") + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := catalog.Lists()
			names := catalog.Names()
			if len(args) == 1 {
				if _, ok := lists[args[0]]; !ok {
					return fmt.Errorf("unknown list %q (known: %s)", args[0], strings.Join(names, ", "))
				}
				names = []string{args[0]}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				selected := make(map[string][]catalog.Option, len(names))
				for _, n := range names {
					selected[n] = lists[n]
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(selected)
			}

			for i, n := range names {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printList(out, n, lists[n])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func printList(w io.Writer, name string, options []catalog.Option) {
	fmt.Fprintln(w, headingStyle.Render(name))
	for _, o := range options {
		line := "  " + o.Label
		if o.Value != o.Label {
			line += " " + valueStyle.Render("("+o.Value+")")
		}
		fmt.Fprintln(w, line)
		if o.Description != "" {
			fmt.Fprintln(w, descStyle.Render(o.Description))
		}
	}
}
