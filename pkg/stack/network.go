package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/compute"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/cloudbloc/gkestack/pkg/config"
)

// Network groups the networking resources one platform stack needs: a
// custom-mode VPC, a subnetwork with secondary ranges for pods and
// services, an allow-internal firewall rule, and a Cloud Router with NAT
// so private nodes can reach the internet for pulls and updates.
type Network struct {
	pulumi.ResourceState

	// Config is the resolved configuration the resources were declared from.
	Config config.NetworkConfig

	VPC      *compute.Network
	Subnet   *compute.Subnetwork
	Firewall *compute.Firewall
	Router   *compute.Router
	NAT      *compute.RouterNat
}

// NewNetwork declares the network resource group. The configuration must
// already be resolved, so no validation happens here; every resource is a
// child of the component and carries the given labels where the resource
// type supports them.
func NewNetwork(ctx *pulumi.Context, name string, cfg config.NetworkConfig, opts ...pulumi.ResourceOption) (*Network, error) {
	n := &Network{Config: cfg}
	if err := ctx.RegisterComponentResource("gkestack:index:Network", name, n, opts...); err != nil {
		return nil, err
	}

	var err error
	n.VPC, err = compute.NewNetwork(ctx, cfg.VPCName(), &compute.NetworkArgs{
		Name:                  pulumi.String(cfg.VPCName()),
		Project:               pulumi.String(cfg.ProjectID),
		AutoCreateSubnetworks: pulumi.Bool(false),
		RoutingMode:           pulumi.String("REGIONAL"),
		Description:           pulumi.String(fmt.Sprintf("VPC for the %s %s platform", cfg.Prefix, cfg.Environment)),
	}, pulumi.Parent(n))
	if err != nil {
		return nil, fmt.Errorf("failed to declare VPC: %w", err)
	}

	n.Subnet, err = compute.NewSubnetwork(ctx, cfg.SubnetName(), &compute.SubnetworkArgs{
		Name:                  pulumi.String(cfg.SubnetName()),
		Project:               pulumi.String(cfg.ProjectID),
		Region:                pulumi.String(cfg.Region),
		Network:               n.VPC.ID(),
		IpCidrRange:           pulumi.String(cfg.PrimaryCIDR),
		PrivateIpGoogleAccess: pulumi.Bool(true),
		SecondaryIpRanges: compute.SubnetworkSecondaryIpRangeArray{
			&compute.SubnetworkSecondaryIpRangeArgs{
				RangeName:   pulumi.String(cfg.PodRangeName),
				IpCidrRange: pulumi.String(cfg.PodCIDR),
			},
			&compute.SubnetworkSecondaryIpRangeArgs{
				RangeName:   pulumi.String(cfg.ServiceRangeName),
				IpCidrRange: pulumi.String(cfg.ServiceCIDR),
			},
		},
	}, pulumi.Parent(n))
	if err != nil {
		return nil, fmt.Errorf("failed to declare subnetwork: %w", err)
	}

	// Node, pod, and service ranges may talk to each other freely; anything
	// else stays subject to GKE's own rules.
	n.Firewall, err = compute.NewFirewall(ctx, cfg.FirewallName(), &compute.FirewallArgs{
		Name:      pulumi.String(cfg.FirewallName()),
		Project:   pulumi.String(cfg.ProjectID),
		Network:   n.VPC.Name,
		Direction: pulumi.String("INGRESS"),
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{Protocol: pulumi.String("tcp")},
			&compute.FirewallAllowArgs{Protocol: pulumi.String("udp")},
			&compute.FirewallAllowArgs{Protocol: pulumi.String("icmp")},
		},
		SourceRanges: pulumi.StringArray{
			pulumi.String(cfg.PrimaryCIDR),
			pulumi.String(cfg.PodCIDR),
			pulumi.String(cfg.ServiceCIDR),
		},
	}, pulumi.Parent(n))
	if err != nil {
		return nil, fmt.Errorf("failed to declare firewall: %w", err)
	}

	n.Router, err = compute.NewRouter(ctx, cfg.RouterName(), &compute.RouterArgs{
		Name:    pulumi.String(cfg.RouterName()),
		Project: pulumi.String(cfg.ProjectID),
		Region:  pulumi.String(cfg.Region),
		Network: n.VPC.ID(),
	}, pulumi.Parent(n))
	if err != nil {
		return nil, fmt.Errorf("failed to declare router: %w", err)
	}

	n.NAT, err = compute.NewRouterNat(ctx, cfg.NATName(), &compute.RouterNatArgs{
		Name:                          pulumi.String(cfg.NATName()),
		Project:                       pulumi.String(cfg.ProjectID),
		Region:                        pulumi.String(cfg.Region),
		Router:                        n.Router.Name,
		NatIpAllocateOption:           pulumi.String("AUTO_ONLY"),
		SourceSubnetworkIpRangesToNat: pulumi.String("ALL_SUBNETWORKS_ALL_IP_RANGES"),
	}, pulumi.Parent(n))
	if err != nil {
		return nil, fmt.Errorf("failed to declare NAT gateway: %w", err)
	}

	if err := ctx.RegisterResourceOutputs(n, pulumi.Map{
		"vpcName":    n.VPC.Name,
		"subnetName": n.Subnet.Name,
		"routerName": n.Router.Name,
	}); err != nil {
		return nil, err
	}
	return n, nil
}
