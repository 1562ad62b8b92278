package config

import (
	"fmt"

	"github.com/cloudbloc/gkestack/internal/labels"
)

// ProfileKind selects one of the built-in platform profiles.
type ProfileKind string

const (
	// ProfileCostOptimized favors cheap spot nodes and a small autoscaling
	// ceiling. Used for dev environments.
	ProfileCostOptimized ProfileKind = "cost-optimized"

	// ProfileBalanced trades some cost for steadier capacity.
	// Used for staging environments.
	ProfileBalanced ProfileKind = "balanced"

	// ProfileHighAvailability runs on-demand nodes with headroom for
	// failover. Used for prod environments.
	ProfileHighAvailability ProfileKind = "high-availability"
)

// IsValid returns true if the profile kind is one of the built-ins.
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileCostOptimized, ProfileBalanced, ProfileHighAvailability:
		return true
	default:
		return false
	}
}

// String returns the profile kind token.
func (k ProfileKind) String() string {
	return string(k)
}

// clusterDefaults returns the variant-specific cluster shape. This single
// mapping is the only place the three profiles differ; network derivation
// is shared.
func (k ProfileKind) clusterDefaults() ClusterArgs {
	spot := func(b bool) *bool { return &b }

	switch k {
	case ProfileBalanced:
		return ClusterArgs{
			MachineType:      "n2-standard-2",
			InitialNodeCount: 2,
			MinNodes:         2,
			MaxNodes:         5,
			UseSpotInstances: spot(true),
			DiskSizeGB:       75,
		}
	case ProfileHighAvailability:
		return ClusterArgs{
			MachineType:      "n2-standard-4",
			InitialNodeCount: 3,
			MinNodes:         3,
			MaxNodes:         10,
			UseSpotInstances: spot(false),
			DiskSizeGB:       100,
		}
	default: // ProfileCostOptimized
		return ClusterArgs{
			MachineType:      DefaultMachineType,
			InitialNodeCount: DefaultInitialNodeCount,
			MinNodes:         DefaultMinNodes,
			MaxNodes:         DefaultMaxNodes,
			UseSpotInstances: spot(true),
			DiskSizeGB:       DefaultDiskSizeGB,
		}
	}
}

// Profile binds a profile kind to the base parameters every derived
// configuration shares. Profiles are stateless: each produce call returns a
// fresh validated value.
type Profile struct {
	Kind        ProfileKind
	ProjectID   string
	Region      string
	Environment string
	Prefix      string
}

// ProfileForEnvironment selects the profile for an environment:
// dev is cost-optimized, staging is balanced, prod is high-availability.
// Unknown environments fail with ErrInvalidEnvironment rather than falling
// back to a default, matching the hard validation the config constructors
// apply.
func ProfileForEnvironment(projectID, region, env, prefix string) (Profile, error) {
	if err := ValidateEnvironment(env); err != nil {
		return Profile{}, err
	}

	var kind ProfileKind
	switch env {
	case "prod":
		kind = ProfileHighAvailability
	case "staging":
		kind = ProfileBalanced
	case "dev":
		kind = ProfileCostOptimized
	default:
		// Unreachable: ValidateEnvironment pins env to the three cases above.
		return Profile{}, fmt.Errorf("%w: %q has no profile mapping", ErrInvalidEnvironment, env)
	}

	return Profile{
		Kind:        kind,
		ProjectID:   projectID,
		Region:      region,
		Environment: env,
		Prefix:      prefix,
	}, nil
}

// CommonLabels returns the labels every resource in the stack carries.
func (p Profile) CommonLabels() map[string]string {
	return labels.New(p.Environment).WithProject(p.ProjectID).Build()
}

// NetworkOverrides overrides individual network defaults. Zero-valued
// fields keep the profile's value.
type NetworkOverrides struct {
	PrimaryCIDR      string `yaml:"primaryCidr,omitempty" json:"primaryCidr,omitempty"`
	PodCIDR          string `yaml:"podCidr,omitempty" json:"podCidr,omitempty"`
	ServiceCIDR      string `yaml:"serviceCidr,omitempty" json:"serviceCidr,omitempty"`
	PodRangeName     string `yaml:"podRangeName,omitempty" json:"podRangeName,omitempty"`
	ServiceRangeName string `yaml:"serviceRangeName,omitempty" json:"serviceRangeName,omitempty"`
}

// ClusterOverrides overrides individual cluster defaults. Zero-valued
// fields keep the profile's value; UseSpotInstances is a pointer because
// false is a meaningful override.
type ClusterOverrides struct {
	Zone             string `yaml:"zone,omitempty" json:"zone,omitempty"`
	MachineType      string `yaml:"machineType,omitempty" json:"machineType,omitempty"`
	InitialNodeCount int    `yaml:"initialNodeCount,omitempty" json:"initialNodeCount,omitempty"`
	MinNodes         int    `yaml:"minNodes,omitempty" json:"minNodes,omitempty"`
	MaxNodes         int    `yaml:"maxNodes,omitempty" json:"maxNodes,omitempty"`
	DiskSizeGB       int    `yaml:"diskSizeGb,omitempty" json:"diskSizeGb,omitempty"`
	UseSpotInstances *bool  `yaml:"useSpotInstances,omitempty" json:"useSpotInstances,omitempty"`
	MasterCIDR       string `yaml:"masterCidr,omitempty" json:"masterCidr,omitempty"`
	PodRangeName     string `yaml:"podRangeName,omitempty" json:"podRangeName,omitempty"`
	ServiceRangeName string `yaml:"serviceRangeName,omitempty" json:"serviceRangeName,omitempty"`
}

// NetworkConfig derives the network configuration for this profile.
// Network derivation is identical across profile kinds.
func (p Profile) NetworkConfig(overrides NetworkOverrides) (NetworkConfig, error) {
	return NewNetworkConfig(NetworkArgs{
		ProjectID:        p.ProjectID,
		Region:           p.Region,
		Environment:      p.Environment,
		Prefix:           p.Prefix,
		PrimaryCIDR:      overrides.PrimaryCIDR,
		PodCIDR:          overrides.PodCIDR,
		ServiceCIDR:      overrides.ServiceCIDR,
		PodRangeName:     overrides.PodRangeName,
		ServiceRangeName: overrides.ServiceRangeName,
	})
}

// ClusterConfig derives the cluster configuration for this profile.
// Overrides win field-by-field over the variant defaults, and the merged
// result still goes through full construction-time validation, so a
// profile cannot be used to sneak an out-of-policy value past the rules.
func (p Profile) ClusterConfig(overrides ClusterOverrides) (ClusterConfig, error) {
	args := p.Kind.clusterDefaults()
	args.ProjectID = p.ProjectID
	args.Region = p.Region
	args.Environment = p.Environment
	args.Prefix = p.Prefix

	if overrides.Zone != "" {
		args.Zone = overrides.Zone
	}
	if overrides.MachineType != "" {
		args.MachineType = overrides.MachineType
	}
	if overrides.InitialNodeCount != 0 {
		args.InitialNodeCount = overrides.InitialNodeCount
	}
	if overrides.MinNodes != 0 {
		args.MinNodes = overrides.MinNodes
	}
	if overrides.MaxNodes != 0 {
		args.MaxNodes = overrides.MaxNodes
	}
	if overrides.DiskSizeGB != 0 {
		args.DiskSizeGB = overrides.DiskSizeGB
	}
	if overrides.UseSpotInstances != nil {
		args.UseSpotInstances = overrides.UseSpotInstances
	}
	if overrides.MasterCIDR != "" {
		args.MasterCIDR = overrides.MasterCIDR
	}
	if overrides.PodRangeName != "" {
		args.PodRangeName = overrides.PodRangeName
	}
	if overrides.ServiceRangeName != "" {
		args.ServiceRangeName = overrides.ServiceRangeName
	}

	return NewClusterConfig(args)
}
