// Command advisor serves the symptom advisor chat API, or answers a single
// question from the command line.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "advisor",
		Short:         "Rule-based symptom advisor",
		Long:          "Matches free-text symptom descriptions against a tabular disease dataset and answers with ranked possible conditions.",
		SilenceUsage:  true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newAskCmd())
	return root
}
