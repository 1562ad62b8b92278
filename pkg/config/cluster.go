package config

import (
	"fmt"

	"github.com/cloudbloc/gkestack/internal/naming"
)

// Cluster defaults.
const (
	DefaultMachineType      = "e2-medium"
	DefaultInitialNodeCount = 1
	DefaultMinNodes         = 1
	DefaultMaxNodes         = 3
	DefaultDiskSizeGB       = 50
	DefaultMasterCIDR       = "172.16.0.0/28"
)

// ClusterArgs is the raw input for a cluster configuration.
// Zero-valued optional fields resolve to the Default* constants;
// UseSpotInstances is a pointer because false is a meaningful override.
type ClusterArgs struct {
	ProjectID   string `yaml:"projectId" json:"projectId"`
	Region      string `yaml:"region" json:"region"`
	Environment string `yaml:"environment" json:"environment"`
	Prefix      string `yaml:"prefix" json:"prefix"`

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

// ClusterConfig is a fully resolved cluster configuration.
// It is constructed once, validated, and never mutated afterwards.
type ClusterConfig struct {
	ProjectID   string
	Region      string
	Environment string
	Prefix      string

	Zone             string
	MachineType      string
	InitialNodeCount int
	MinNodes         int
	MaxNodes         int
	DiskSizeGB       int
	UseSpotInstances bool
	MasterCIDR       string
	PodRangeName     string
	ServiceRangeName string
}

// NewClusterConfig validates args, fills defaults, and returns a resolved
// configuration. Steps run in a fixed order and the first failure aborts
// construction, so the reported error is deterministic when several fields
// are invalid:
//
//	environment, region, machine type, max nodes, disk size, initial node
//	count, min<=max, zone, master CIDR, pass-through ranges.
//
// The min/max comparison uses the resolved max nodes, so an explicit
// minNodes is checked against the default maxNodes when the caller left
// maxNodes unset.
func NewClusterConfig(args ClusterArgs) (ClusterConfig, error) {
	if err := ValidateEnvironment(args.Environment); err != nil {
		return ClusterConfig{}, err
	}
	if err := ValidateRegion(args.Region); err != nil {
		return ClusterConfig{}, err
	}

	machineType := defaultString(args.MachineType, DefaultMachineType)
	if err := ValidateMachineType(machineType); err != nil {
		return ClusterConfig{}, err
	}

	maxNodes := defaultInt(args.MaxNodes, DefaultMaxNodes)
	if err := ValidateBound(BoundMaxNodes, maxNodes); err != nil {
		return ClusterConfig{}, err
	}

	diskSizeGB := defaultInt(args.DiskSizeGB, DefaultDiskSizeGB)
	if err := ValidateBound(BoundDiskSizeGB, diskSizeGB); err != nil {
		return ClusterConfig{}, err
	}

	initialNodeCount := defaultInt(args.InitialNodeCount, DefaultInitialNodeCount)
	if err := ValidateBound(BoundNodeCount, initialNodeCount); err != nil {
		return ClusterConfig{}, err
	}

	minNodes := defaultInt(args.MinNodes, DefaultMinNodes)
	if minNodes > maxNodes {
		return ClusterConfig{}, fmt.Errorf("%w: minNodes %d > maxNodes %d", ErrMinExceedsMax, minNodes, maxNodes)
	}

	zone := args.Zone
	if zone == "" {
		zone = naming.DefaultZone(args.Region)
	}

	masterCIDR := defaultString(args.MasterCIDR, DefaultMasterCIDR)
	if err := ValidateMasterCIDR(masterCIDR); err != nil {
		return ClusterConfig{}, err
	}

	useSpot := true
	if args.UseSpotInstances != nil {
		useSpot = *args.UseSpotInstances
	}

	return ClusterConfig{
		ProjectID:        args.ProjectID,
		Region:           args.Region,
		Environment:      args.Environment,
		Prefix:           args.Prefix,
		Zone:             zone,
		MachineType:      machineType,
		InitialNodeCount: initialNodeCount,
		MinNodes:         minNodes,
		MaxNodes:         maxNodes,
		DiskSizeGB:       diskSizeGB,
		UseSpotInstances: useSpot,
		MasterCIDR:       masterCIDR,
		PodRangeName:     defaultString(args.PodRangeName, DefaultPodRangeName),
		ServiceRangeName: defaultString(args.ServiceRangeName, DefaultServiceRangeName),
	}, nil
}

// ClusterName returns the canonical GKE cluster name.
func (c ClusterConfig) ClusterName() string {
	return naming.Cluster(c.Prefix, c.Environment)
}

// NodePoolName returns the canonical node pool name.
func (c ClusterConfig) NodePoolName() string {
	return naming.NodePool(c.Prefix, c.Environment)
}

// WorkloadIdentityPool returns the project's workload identity pool id.
func (c ClusterConfig) WorkloadIdentityPool() string {
	return naming.WorkloadPool(c.ProjectID)
}

// Location returns the GKE location the cluster is placed in (its zone).
func (c ClusterConfig) Location() string {
	return c.Zone
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
