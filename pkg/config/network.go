package config

import "github.com/cloudbloc/gkestack/internal/naming"

// Network defaults. The pod and service CIDRs are secondary (alias) ranges
// on the subnet, so they deliberately sit outside the primary range.
const (
	DefaultPrimaryCIDR      = "10.0.0.0/16"
	DefaultPodCIDR          = "10.11.0.0/21"
	DefaultServiceCIDR      = "10.12.0.0/21"
	DefaultPodRangeName     = "pod-ranges"
	DefaultServiceRangeName = "service-ranges"
)

// NetworkArgs is the raw input for a network configuration.
// Empty optional fields resolve to the Default* constants.
type NetworkArgs struct {
	ProjectID   string `yaml:"projectId" json:"projectId"`
	Region      string `yaml:"region" json:"region"`
	Environment string `yaml:"environment" json:"environment"`
	Prefix      string `yaml:"prefix" json:"prefix"`

	PrimaryCIDR      string `yaml:"primaryCidr,omitempty" json:"primaryCidr,omitempty"`
	PodCIDR          string `yaml:"podCidr,omitempty" json:"podCidr,omitempty"`
	ServiceCIDR      string `yaml:"serviceCidr,omitempty" json:"serviceCidr,omitempty"`
	PodRangeName     string `yaml:"podRangeName,omitempty" json:"podRangeName,omitempty"`
	ServiceRangeName string `yaml:"serviceRangeName,omitempty" json:"serviceRangeName,omitempty"`
}

// NetworkConfig is a fully resolved network configuration.
// It is constructed once, validated, and never mutated afterwards.
type NetworkConfig struct {
	ProjectID   string
	Region      string
	Environment string
	Prefix      string

	PrimaryCIDR      string
	PodCIDR          string
	ServiceCIDR      string
	PodRangeName     string
	ServiceRangeName string
}

// NewNetworkConfig validates args, fills defaults, and returns a resolved
// configuration. The environment is checked before the region, so when both
// are invalid the environment error surfaces.
func NewNetworkConfig(args NetworkArgs) (NetworkConfig, error) {
	if err := ValidateEnvironment(args.Environment); err != nil {
		return NetworkConfig{}, err
	}
	if err := ValidateRegion(args.Region); err != nil {
		return NetworkConfig{}, err
	}

	return NetworkConfig{
		ProjectID:        args.ProjectID,
		Region:           args.Region,
		Environment:      args.Environment,
		Prefix:           args.Prefix,
		PrimaryCIDR:      defaultString(args.PrimaryCIDR, DefaultPrimaryCIDR),
		PodCIDR:          defaultString(args.PodCIDR, DefaultPodCIDR),
		ServiceCIDR:      defaultString(args.ServiceCIDR, DefaultServiceCIDR),
		PodRangeName:     defaultString(args.PodRangeName, DefaultPodRangeName),
		ServiceRangeName: defaultString(args.ServiceRangeName, DefaultServiceRangeName),
	}, nil
}

// VPCName returns the canonical VPC network name.
func (c NetworkConfig) VPCName() string {
	return naming.VPC(c.Prefix, c.Environment)
}

// SubnetName returns the canonical subnetwork name.
func (c NetworkConfig) SubnetName() string {
	return naming.Subnet(c.Prefix, c.Environment)
}

// RouterName returns the canonical Cloud Router name.
func (c NetworkConfig) RouterName() string {
	return naming.Router(c.Prefix, c.Environment)
}

// NATName returns the canonical Cloud NAT gateway name.
func (c NetworkConfig) NATName() string {
	return naming.NAT(c.Prefix, c.Environment)
}

// FirewallName returns the canonical allow-internal firewall rule name.
func (c NetworkConfig) FirewallName() string {
	return naming.AllowInternalFirewall(c.Prefix, c.Environment)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
