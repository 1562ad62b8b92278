package config

import (
	"fmt"
	"slices"
)

// AllowedEnvironments are the environments a stack may target.
var AllowedEnvironments = []string{"dev", "staging", "prod"}

// AllowedRegions are the Google Cloud regions a stack may deploy to.
// https://cloud.google.com/compute/docs/regions-zones
var AllowedRegions = []string{
	"us-central1",
	"us-east1",
	"europe-west1",
	"europe-west3",
	"asia-east1",
}

// AllowedMachineTypes are the GKE node machine types a stack may request.
// The list covers the cost-optimized (e2), balanced (n2/n2d), and
// compute-heavy (c2) families the profiles draw from.
var AllowedMachineTypes = []string{
	"e2-small",
	"e2-medium",
	"e2-standard-2",
	"e2-standard-4",
	"n2-standard-2",
	"n2-standard-4",
	"n2-standard-8",
	"n2d-standard-2",
	"c2-standard-4",
	"n1-standard-2",
}

// Bound names accepted by ValidateBound.
const (
	BoundMaxNodes   = "maxNodes"
	BoundDiskSizeGB = "diskSizeGb"
	BoundNodeCount  = "nodeCount"
)

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

// numericBounds maps a bound name to its inclusive range.
// Loaded once; never mutated after init.
var numericBounds = map[string]Bounds{
	BoundMaxNodes:   {Min: 1, Max: 50},
	BoundDiskSizeGB: {Min: 30, Max: 200},
	BoundNodeCount:  {Min: 1, Max: 20},
}

// ValidateEnvironment checks the environment against the allow-list.
func ValidateEnvironment(env string) error {
	if !slices.Contains(AllowedEnvironments, env) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidEnvironment, env, AllowedEnvironments)
	}
	return nil
}

// ValidateRegion checks the region against the allow-list.
func ValidateRegion(region string) error {
	if !slices.Contains(AllowedRegions, region) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidRegion, region, AllowedRegions)
	}
	return nil
}

// ValidateMachineType checks the machine type against the allow-list.
func ValidateMachineType(machineType string) error {
	if !slices.Contains(AllowedMachineTypes, machineType) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidMachineType, machineType, AllowedMachineTypes)
	}
	return nil
}

// ValidateBound checks that value is within the named inclusive range.
// The bound name must be one of the Bound* constants.
func ValidateBound(name string, value int) error {
	b, ok := numericBounds[name]
	if !ok {
		return fmt.Errorf("unknown bound %q", name)
	}
	if value < b.Min || value > b.Max {
		return fmt.Errorf("%w: %s must be %d-%d, got %d", ErrOutOfRange, name, b.Min, b.Max, value)
	}
	return nil
}

// BoundFor returns the inclusive range for a bound name.
// The second return is false for unknown names.
func BoundFor(name string) (Bounds, bool) {
	b, ok := numericBounds[name]
	return b, ok
}
