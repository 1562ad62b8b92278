package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudbloc/gkestack/cmd/gkestack/handlers"
)

// Validate returns the command for checking a manifest against the
// platform policy.
//
// Optional flags:
//
//	--config, -c: Path to manifest file (default: auto-detect gkestack.yaml)
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a manifest against the platform policy",
		Long: `Check a deployment manifest against the platform policy.

Validation runs the exact derivation a deployment would: profile
selection, network and cluster configuration including CIDR checks,
secret ids, and the workload identity binding. No cloud API is
touched; a manifest that validates here is a manifest the components
will accept.

The first policy violation is reported and the command exits
non-zero.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to manifest file (default: gkestack.yaml)")

	return cmd
}
