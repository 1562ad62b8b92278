package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudbloc/gkestack/pkg/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the manifest wizard.
	runWizard = config.RunWizard

	// writeManifest writes the manifest to a file.
	writeManifest = config.WriteManifest
)

// Init runs the manifest wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	manifest := result.ToManifest()

	// Resolve before writing so the file on disk is known-good and the
	// summary can show derived values.
	resolved, err := manifest.Resolve()
	if err != nil {
		return fmt.Errorf("manifest does not satisfy the platform policy: %w", err)
	}

	if err := writeManifest(outputPath, manifest); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	printInitSuccess(outputPath, resolved)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("gkestack - GKE platform manifests")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment manifest with profile defaults.")
	fmt.Println("The environment you pick selects the platform profile; everything")
	fmt.Println("else can be overridden later by editing the manifest.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, resolved *config.Resolved) {
	fmt.Println()
	fmt.Println("Manifest saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Project:     %s\n", resolved.Profile.ProjectID)
	fmt.Printf("  Region:      %s\n", resolved.Profile.Region)
	fmt.Printf("  Environment: %s (%s profile)\n", resolved.Profile.Environment, resolved.Profile.Kind)
	fmt.Printf("  VPC:         %s\n", resolved.Network.VPCName())
	fmt.Printf("  Cluster:     %s in %s\n", resolved.Cluster.ClusterName(), resolved.Cluster.Location())
	fmt.Printf("  Node pool:   %d-%d x %s\n", resolved.Cluster.MinNodes, resolved.Cluster.MaxNodes, resolved.Cluster.MachineType)
	if len(resolved.Secrets) > 0 {
		fmt.Printf("  Secrets:     %s\n", strings.Join(resolved.Secrets, ", "))
	}
	if resolved.Identity != nil {
		fmt.Printf("  Identity:    %s -> %s\n", resolved.Identity.Member(), resolved.Identity.Email())
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Check the full deployment plan:")
	fmt.Println("     gkestack inspect")
	fmt.Println()
	fmt.Println("  3. Deploy from your Pulumi program:")
	fmt.Println("     pulumi up")
	fmt.Println()
}
