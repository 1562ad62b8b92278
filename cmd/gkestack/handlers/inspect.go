package handlers

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/mattn/go-isatty"

	"github.com/cloudbloc/gkestack/internal/naming"
	"github.com/cloudbloc/gkestack/pkg/config"
)

// Plan describes everything a deployment derives from a manifest.
type Plan struct {
	ProjectID   string `json:"projectId"`
	Region      string `json:"region"`
	Environment string `json:"environment"`
	Profile     string `json:"profile"`

	Network  NetworkPlan       `json:"network"`
	Cluster  ClusterPlan       `json:"cluster"`
	Secrets  []SecretPlan      `json:"secrets,omitempty"`
	Identity *IdentityPlan     `json:"identity,omitempty"`
	Labels   map[string]string `json:"labels"`
}

// NetworkPlan holds the derived network resources and ranges.
type NetworkPlan struct {
	VPC          string    `json:"vpc"`
	Subnet       string    `json:"subnet"`
	Router       string    `json:"router"`
	NAT          string    `json:"nat"`
	Firewall     string    `json:"firewall"`
	PrimaryCIDR  string    `json:"primaryCidr"`
	PodRange     RangePlan `json:"podRange"`
	ServiceRange RangePlan `json:"serviceRange"`
}

// RangePlan is a named secondary range.
type RangePlan struct {
	Name string `json:"name"`
	CIDR string `json:"cidr"`
}

// ClusterPlan holds the derived cluster shape.
type ClusterPlan struct {
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	MasterCIDR   string       `json:"masterCidr"`
	WorkloadPool string       `json:"workloadPool"`
	NodePool     NodePoolPlan `json:"nodePool"`
}

// NodePoolPlan holds the derived node pool shape.
type NodePoolPlan struct {
	Name             string `json:"name"`
	MachineType      string `json:"machineType"`
	InitialNodeCount int    `json:"initialNodeCount"`
	MinNodes         int    `json:"minNodes"`
	MaxNodes         int    `json:"maxNodes"`
	DiskSizeGB       int    `json:"diskSizeGb"`
	Spot             bool   `json:"spot"`
}

// SecretPlan maps a logical secret id to its Secret Manager name.
type SecretPlan struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IdentityPlan holds the derived workload identity binding.
type IdentityPlan struct {
	ServiceAccount string `json:"serviceAccount"`
	Role           string `json:"role"`
	Member         string `json:"member"`
}

// Inspect resolves a manifest and shows the full deployment plan.
func Inspect(configPath string, jsonOutput bool) error {
	path, manifest, err := loadManifest(configPath)
	if err != nil {
		return err
	}

	resolved, err := manifest.Resolve()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	plan := buildPlan(resolved)

	if jsonOutput {
		b, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	if isInteractiveTTY() {
		fmt.Print(renderPlan(path, plan))
		return nil
	}

	printPlainPlan(path, plan)
	return nil
}

// buildPlan derives the plan view from a resolved manifest.
func buildPlan(resolved *config.Resolved) *Plan {
	network := resolved.Network
	cluster := resolved.Cluster

	plan := &Plan{
		ProjectID:   resolved.Profile.ProjectID,
		Region:      resolved.Profile.Region,
		Environment: resolved.Profile.Environment,
		Profile:     resolved.Profile.Kind.String(),
		Network: NetworkPlan{
			VPC:          network.VPCName(),
			Subnet:       network.SubnetName(),
			Router:       network.RouterName(),
			NAT:          network.NATName(),
			Firewall:     network.FirewallName(),
			PrimaryCIDR:  network.PrimaryCIDR,
			PodRange:     RangePlan{Name: network.PodRangeName, CIDR: network.PodCIDR},
			ServiceRange: RangePlan{Name: network.ServiceRangeName, CIDR: network.ServiceCIDR},
		},
		Cluster: ClusterPlan{
			Name:         cluster.ClusterName(),
			Location:     cluster.Location(),
			MasterCIDR:   cluster.MasterCIDR,
			WorkloadPool: cluster.WorkloadIdentityPool(),
			NodePool: NodePoolPlan{
				Name:             cluster.NodePoolName(),
				MachineType:      cluster.MachineType,
				InitialNodeCount: cluster.InitialNodeCount,
				MinNodes:         cluster.MinNodes,
				MaxNodes:         cluster.MaxNodes,
				DiskSizeGB:       cluster.DiskSizeGB,
				Spot:             cluster.UseSpotInstances,
			},
		},
		Labels: resolved.Labels,
	}

	for _, id := range resolved.Secrets {
		plan.Secrets = append(plan.Secrets, SecretPlan{
			ID:   id,
			Name: naming.Secret(resolved.Profile.Prefix, resolved.Profile.Environment, id),
		})
	}

	if resolved.Identity != nil {
		plan.Identity = &IdentityPlan{
			ServiceAccount: resolved.Identity.Email(),
			Role:           resolved.Identity.BindingRole(),
			Member:         resolved.Identity.Member(),
		}
	}

	return plan
}

// printPlainPlan prints the plan without styling, for non-TTY output.
func printPlainPlan(path string, plan *Plan) {
	fmt.Printf("Plan for %s\n", path)
	fmt.Println()
	fmt.Printf("  Project:     %s\n", plan.ProjectID)
	fmt.Printf("  Region:      %s\n", plan.Region)
	fmt.Printf("  Environment: %s (%s profile)\n", plan.Environment, plan.Profile)
	fmt.Println()

	fmt.Println("Network")
	fmt.Printf("  %-14s %s\n", "VPC:", plan.Network.VPC)
	fmt.Printf("  %-14s %s (%s)\n", "Subnet:", plan.Network.Subnet, plan.Network.PrimaryCIDR)
	fmt.Printf("  %-14s %s (%s)\n", "Pod range:", plan.Network.PodRange.Name, plan.Network.PodRange.CIDR)
	fmt.Printf("  %-14s %s (%s)\n", "Service range:", plan.Network.ServiceRange.Name, plan.Network.ServiceRange.CIDR)
	fmt.Printf("  %-14s %s, %s\n", "Egress:", plan.Network.Router, plan.Network.NAT)
	fmt.Printf("  %-14s %s\n", "Firewall:", plan.Network.Firewall)
	fmt.Println()

	fmt.Println("Cluster")
	fmt.Printf("  %-14s %s in %s\n", "Name:", plan.Cluster.Name, plan.Cluster.Location)
	fmt.Printf("  %-14s %s\n", "Master CIDR:", plan.Cluster.MasterCIDR)
	fmt.Printf("  %-14s %s\n", "Workload pool:", plan.Cluster.WorkloadPool)
	pool := plan.Cluster.NodePool
	fmt.Printf("  %-14s %s: %d-%d x %s, %dGB disk, spot=%t\n", "Node pool:",
		pool.Name, pool.MinNodes, pool.MaxNodes, pool.MachineType, pool.DiskSizeGB, pool.Spot)

	if len(plan.Secrets) > 0 {
		fmt.Println()
		fmt.Println("Secrets")
		for _, s := range plan.Secrets {
			fmt.Printf("  %-14s %s\n", s.ID+":", s.Name)
		}
	}

	if plan.Identity != nil {
		fmt.Println()
		fmt.Println("Workload Identity")
		fmt.Printf("  %-14s %s\n", "Account:", plan.Identity.ServiceAccount)
		fmt.Printf("  %-14s %s\n", "Member:", plan.Identity.Member)
		fmt.Printf("  %-14s %s\n", "Role:", plan.Identity.Role)
	}

	if len(plan.Labels) > 0 {
		fmt.Println()
		fmt.Println("Labels")
		for _, k := range slices.Sorted(maps.Keys(plan.Labels)) {
			fmt.Printf("  %s=%s\n", k, plan.Labels[k])
		}
	}
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
