package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudbloc/gkestack/cmd/gkestack/handlers"
)

// Inspect returns the command for showing the resolved deployment plan.
//
// This command resolves the manifest and prints everything a deployment
// would derive from it: the selected profile, resource names, network
// ranges, and the node pool shape.
//
// Optional flags:
//
//	--config, -c: Path to manifest file (default: auto-detect gkestack.yaml)
//	--json: Output in JSON format
func Inspect() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the resolved deployment plan for a manifest",
		Long: `Show everything a deployment would derive from a manifest.

The manifest is resolved exactly as a deployment would resolve it,
then the derived values are printed: profile, canonical resource
names, network CIDRs and secondary ranges, node pool shape, secret
ids, and the workload identity binding.

Examples:
  # Inspect the manifest in the current directory
  gkestack inspect

  # Inspect a specific manifest
  gkestack inspect --config staging.yaml

  # Get the plan in JSON format
  gkestack inspect --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Inspect(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to manifest file (default: gkestack.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
