package stack

import (
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudbloc/gkestack/pkg/config"
)

func TestNewCluster_PrivateVPCNativeCluster(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		network, err := NewNetwork(ctx, "net", devNetworkConfig(t))
		if err != nil {
			return err
		}

		cfg, err := config.NewClusterConfig(config.ClusterArgs{
			ProjectID:   "acme-platform",
			Region:      "us-central1",
			Environment: "dev",
			Prefix:      "acme",
		})
		if err != nil {
			return err
		}

		_, err = NewCluster(ctx, "cluster", cfg, network, map[string]string{"environment": "dev"})
		return err
	})
	require.NoError(t, err)

	cluster := mocks.inputsFor(t, "acme-dev-cluster")
	assert.Equal(t, "us-central1-a", cluster["location"].StringValue())
	assert.Equal(t, "VPC_NATIVE", cluster["networkingMode"].StringValue())
	assert.True(t, cluster["removeDefaultNodePool"].BoolValue())
	assert.False(t, cluster["deletionProtection"].BoolValue(), "non-prod clusters stay deletable")

	private := cluster["privateClusterConfig"].ObjectValue()
	assert.True(t, private["enablePrivateNodes"].BoolValue())
	assert.False(t, private["enablePrivateEndpoint"].BoolValue())
	assert.Equal(t, "172.16.0.0/28", private["masterIpv4CidrBlock"].StringValue())

	identity := cluster["workloadIdentityConfig"].ObjectValue()
	assert.Equal(t, "acme-platform.svc.id.goog", identity["workloadPool"].StringValue())

	alloc := cluster["ipAllocationPolicy"].ObjectValue()
	assert.Equal(t, "pod-ranges", alloc["clusterSecondaryRangeName"].StringValue())
	assert.Equal(t, "service-ranges", alloc["servicesSecondaryRangeName"].StringValue())

	labels := cluster["resourceLabels"].ObjectValue()
	assert.Equal(t, "dev", labels["environment"].StringValue())
}

func TestNewCluster_NodePoolFollowsConfig(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		network, err := NewNetwork(ctx, "net", devNetworkConfig(t))
		if err != nil {
			return err
		}

		spot := false
		cfg, err := config.NewClusterConfig(config.ClusterArgs{
			ProjectID:        "acme-platform",
			Region:           "us-central1",
			Environment:      "dev",
			Prefix:           "acme",
			MachineType:      "n2-standard-4",
			InitialNodeCount: 2,
			MinNodes:         2,
			MaxNodes:         8,
			DiskSizeGB:       120,
			UseSpotInstances: &spot,
		})
		if err != nil {
			return err
		}

		_, err = NewCluster(ctx, "cluster", cfg, network, nil)
		return err
	})
	require.NoError(t, err)

	pool := mocks.inputsFor(t, "acme-dev-node-pool")
	assert.Equal(t, 2.0, pool["initialNodeCount"].NumberValue())

	autoscaling := pool["autoscaling"].ObjectValue()
	assert.Equal(t, 2.0, autoscaling["minNodeCount"].NumberValue())
	assert.Equal(t, 8.0, autoscaling["maxNodeCount"].NumberValue())

	nodeConfig := pool["nodeConfig"].ObjectValue()
	assert.Equal(t, "n2-standard-4", nodeConfig["machineType"].StringValue())
	assert.Equal(t, 120.0, nodeConfig["diskSizeGb"].NumberValue())
	assert.False(t, nodeConfig["spot"].BoolValue())
	assert.Equal(t, "GKE_METADATA", nodeConfig["workloadMetadataConfig"].ObjectValue()["mode"].StringValue())
}

func TestNewCluster_ProdEnablesDeletionProtection(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		netCfg, err := config.NewNetworkConfig(config.NetworkArgs{
			ProjectID:   "acme-platform",
			Region:      "us-central1",
			Environment: "prod",
			Prefix:      "acme",
		})
		if err != nil {
			return err
		}
		network, err := NewNetwork(ctx, "net", netCfg)
		if err != nil {
			return err
		}

		cfg, err := config.NewClusterConfig(config.ClusterArgs{
			ProjectID:   "acme-platform",
			Region:      "us-central1",
			Environment: "prod",
			Prefix:      "acme",
		})
		if err != nil {
			return err
		}
		_, err = NewCluster(ctx, "cluster", cfg, network, nil)
		return err
	})
	require.NoError(t, err)

	cluster := mocks.inputsFor(t, "acme-prod-cluster")
	assert.True(t, cluster["deletionProtection"].BoolValue())
}
