// Package cli implements the kryva command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the kryva command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kryva",
		Short:         "Kryva account tooling",
		Long:          "Kryva: inspect the onboarding option catalog and the terms of service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newTermsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
