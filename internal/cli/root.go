// SPDX-License-Identifier: MIT

// Package cli implements the lvnum command line: demo drivers for the
// solver, the exponential series and the number formatters.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the lvnum command tree. Results go to
// cmd.OutOrStdout(); errors are returned to the caller unprinted.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvnum",
		Short:         "Elementary numerical methods: Gaussian elimination, series, number representation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSolveCommand(),
		newDemoCommand(),
		newExpCommand(),
		newReprCommand(),
	)

	return root
}
