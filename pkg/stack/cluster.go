package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/container"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/cloudbloc/gkestack/pkg/config"
)

// Cluster groups a private VPC-native GKE cluster and its managed node
// pool. The default node pool is removed right after creation so the pool
// this component declares is the only one, with autoscaling, disk, spot,
// and machine type taken from the resolved configuration.
type Cluster struct {
	pulumi.ResourceState

	// Config is the resolved configuration the resources were declared from.
	Config config.ClusterConfig

	Cluster  *container.Cluster
	NodePool *container.NodePool
}

// NewCluster declares the cluster resource group inside the given network.
// The cluster depends on the network component explicitly in addition to
// the output wiring, so the engine never starts it before the subnet and
// its secondary ranges exist.
func NewCluster(ctx *pulumi.Context, name string, cfg config.ClusterConfig, network *Network, labels map[string]string, opts ...pulumi.ResourceOption) (*Cluster, error) {
	c := &Cluster{Config: cfg}
	if err := ctx.RegisterComponentResource("gkestack:index:Cluster", name, c, opts...); err != nil {
		return nil, err
	}

	var err error
	c.Cluster, err = container.NewCluster(ctx, cfg.ClusterName(), &container.ClusterArgs{
		Name:               pulumi.String(cfg.ClusterName()),
		Project:            pulumi.String(cfg.ProjectID),
		Location:           pulumi.String(cfg.Location()),
		Network:            network.VPC.Name,
		Subnetwork:         network.Subnet.Name,
		NetworkingMode:     pulumi.String("VPC_NATIVE"),
		DeletionProtection: pulumi.Bool(cfg.Environment == "prod"),

		// The pool declared below replaces the default one.
		RemoveDefaultNodePool: pulumi.Bool(true),
		InitialNodeCount:      pulumi.Int(1),

		IpAllocationPolicy: &container.ClusterIpAllocationPolicyArgs{
			ClusterSecondaryRangeName:  pulumi.String(cfg.PodRangeName),
			ServicesSecondaryRangeName: pulumi.String(cfg.ServiceRangeName),
		},
		PrivateClusterConfig: &container.ClusterPrivateClusterConfigArgs{
			EnablePrivateNodes:    pulumi.Bool(true),
			EnablePrivateEndpoint: pulumi.Bool(false),
			MasterIpv4CidrBlock:   pulumi.String(cfg.MasterCIDR),
		},
		WorkloadIdentityConfig: &container.ClusterWorkloadIdentityConfigArgs{
			WorkloadPool: pulumi.String(cfg.WorkloadIdentityPool()),
		},
		ResourceLabels: pulumi.ToStringMap(labels),
	}, pulumi.Parent(c), pulumi.DependsOn([]pulumi.Resource{network}))
	if err != nil {
		return nil, fmt.Errorf("failed to declare cluster: %w", err)
	}

	c.NodePool, err = container.NewNodePool(ctx, cfg.NodePoolName(), &container.NodePoolArgs{
		Name:             pulumi.String(cfg.NodePoolName()),
		Project:          pulumi.String(cfg.ProjectID),
		Location:         pulumi.String(cfg.Location()),
		Cluster:          c.Cluster.Name,
		InitialNodeCount: pulumi.Int(cfg.InitialNodeCount),
		Autoscaling: &container.NodePoolAutoscalingArgs{
			MinNodeCount: pulumi.Int(cfg.MinNodes),
			MaxNodeCount: pulumi.Int(cfg.MaxNodes),
		},
		NodeConfig: &container.NodePoolNodeConfigArgs{
			MachineType: pulumi.String(cfg.MachineType),
			DiskSizeGb:  pulumi.Int(cfg.DiskSizeGB),
			Spot:        pulumi.Bool(cfg.UseSpotInstances),
			Labels:      pulumi.ToStringMap(labels),
			OauthScopes: pulumi.StringArray{
				pulumi.String("https://www.googleapis.com/auth/cloud-platform"),
			},
			// GKE_METADATA exposes the workload identity pool to pods.
			WorkloadMetadataConfig: &container.NodePoolNodeConfigWorkloadMetadataConfigArgs{
				Mode: pulumi.String("GKE_METADATA"),
			},
		},
	}, pulumi.Parent(c))
	if err != nil {
		return nil, fmt.Errorf("failed to declare node pool: %w", err)
	}

	if err := ctx.RegisterResourceOutputs(c, pulumi.Map{
		"clusterName":          c.Cluster.Name,
		"endpoint":             c.Cluster.Endpoint,
		"workloadIdentityPool": pulumi.String(cfg.WorkloadIdentityPool()),
	}); err != nil {
		return nil, err
	}
	return c, nil
}
