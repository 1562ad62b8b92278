package handlers

import (
	"fmt"

	"github.com/cloudbloc/gkestack/pkg/config"
)

// loadManifestFile reads a manifest - can be replaced in tests.
var loadManifestFile = config.LoadManifest

// Validate resolves a manifest against the platform policy and reports
// the result. The first violation is returned as the error, so the exit
// code reflects validity.
func Validate(configPath string) error {
	path, manifest, err := loadManifest(configPath)
	if err != nil {
		return err
	}

	resolved, err := manifest.Resolve()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s is valid\n", path)
	fmt.Println()
	fmt.Printf("  Profile:     %s (%s)\n", resolved.Profile.Kind, resolved.Profile.Environment)
	fmt.Printf("  Cluster:     %s\n", resolved.Cluster.ClusterName())
	fmt.Printf("  Network:     %s (%s)\n", resolved.Network.VPCName(), resolved.Network.PrimaryCIDR)
	if resolved.Secrets != nil {
		fmt.Printf("  Secrets:     %d declared\n", len(resolved.Secrets))
	}
	if resolved.Identity != nil {
		fmt.Printf("  Identity:    %s\n", resolved.Identity.Email())
	}

	return nil
}

// loadManifest loads the manifest at configPath, falling back to the
// default filename in the working directory when no path is given.
func loadManifest(configPath string) (string, *config.Manifest, error) {
	if configPath == "" {
		if !fileExists(config.DefaultManifestFilename) {
			return "", nil, fmt.Errorf("no manifest found: %s does not exist\nRun 'gkestack init' to create one", config.DefaultManifestFilename)
		}
		configPath = config.DefaultManifestFilename
	}

	manifest, err := loadManifestFile(configPath)
	if err != nil {
		return "", nil, err
	}
	return configPath, manifest, nil
}
