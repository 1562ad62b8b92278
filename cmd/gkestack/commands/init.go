package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudbloc/gkestack/cmd/gkestack/handlers"
)

// Init returns the command for interactively creating a deployment manifest.
//
// This command guides users through creating a manifest YAML file using an
// interactive wizard with text inputs and single-select prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "gkestack.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment manifest",
		Long: `Interactively create a deployment manifest file.

This command guides you through describing a platform deployment
step by step. It will ask about:

  - Google Cloud project and region
  - Target environment (dev, staging, or prod)
  - Name prefix for every derived resource
  - Secret Manager containers (optional)
  - Workload identity binding (optional)

The environment picks the platform profile: dev runs cost-optimized
spot nodes, staging runs the balanced shape, and prod runs the
high-availability shape. Profile values can be overridden by editing
the generated manifest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "gkestack.yaml", "Output file path")

	return cmd
}
