package stack

import (
	"sync"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudbloc/gkestack/pkg/config"
)

func devNetworkConfig(t *testing.T) config.NetworkConfig {
	t.Helper()
	cfg, err := config.NewNetworkConfig(config.NetworkArgs{
		ProjectID:   "acme-platform",
		Region:      "us-central1",
		Environment: "dev",
		Prefix:      "acme",
	})
	require.NoError(t, err)
	return cfg
}

func TestNewNetwork_DeclaresVPCAndSubnet(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		network, err := NewNetwork(ctx, "net", devNetworkConfig(t))
		if err != nil {
			return err
		}

		// Plain string outputs resolve under mocks; check one round-trips.
		var wg sync.WaitGroup
		wg.Add(1)
		network.VPC.Name.ApplyT(func(name string) error {
			defer wg.Done()
			assert.Equal(t, "acme-dev-vpc", name)
			return nil
		})
		wg.Wait()
		return nil
	})
	require.NoError(t, err)

	vpc := mocks.inputsFor(t, "acme-dev-vpc")
	assert.Equal(t, "acme-platform", vpc["project"].StringValue())
	assert.False(t, vpc["autoCreateSubnetworks"].BoolValue(), "custom-mode VPC must not auto-create subnets")

	subnet := mocks.inputsFor(t, "acme-dev-subnet")
	assert.Equal(t, "10.0.0.0/16", subnet["ipCidrRange"].StringValue())
	assert.Equal(t, "us-central1", subnet["region"].StringValue())
	assert.True(t, subnet["privateIpGoogleAccess"].BoolValue())

	ranges := subnet["secondaryIpRanges"].ArrayValue()
	require.Len(t, ranges, 2)
	assert.Equal(t, "pod-ranges", ranges[0].ObjectValue()["rangeName"].StringValue())
	assert.Equal(t, "10.11.0.0/21", ranges[0].ObjectValue()["ipCidrRange"].StringValue())
	assert.Equal(t, "service-ranges", ranges[1].ObjectValue()["rangeName"].StringValue())
	assert.Equal(t, "10.12.0.0/21", ranges[1].ObjectValue()["ipCidrRange"].StringValue())
}

func TestNewNetwork_FirewallAndNAT(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		_, err := NewNetwork(ctx, "net", devNetworkConfig(t))
		return err
	})
	require.NoError(t, err)

	firewall := mocks.inputsFor(t, "acme-dev-allow-internal")
	assert.Equal(t, "INGRESS", firewall["direction"].StringValue())

	sources := firewall["sourceRanges"].ArrayValue()
	require.Len(t, sources, 3)
	assert.Equal(t, "10.0.0.0/16", sources[0].StringValue())
	assert.Equal(t, "10.11.0.0/21", sources[1].StringValue())
	assert.Equal(t, "10.12.0.0/21", sources[2].StringValue())

	allows := firewall["allows"].ArrayValue()
	require.Len(t, allows, 3)
	assert.Equal(t, "tcp", allows[0].ObjectValue()["protocol"].StringValue())

	assert.True(t, mocks.declared("acme-dev-router"))
	nat := mocks.inputsFor(t, "acme-dev-nat")
	assert.Equal(t, "AUTO_ONLY", nat["natIpAllocateOption"].StringValue())
	assert.Equal(t, "ALL_SUBNETWORKS_ALL_IP_RANGES", nat["sourceSubnetworkIpRangesToNat"].StringValue())
}

func TestNewNetwork_OverriddenRangesCarryThrough(t *testing.T) {
	t.Parallel()
	mocks, err := runWithMocks(t, func(ctx *pulumi.Context) error {
		cfg, err := config.NewNetworkConfig(config.NetworkArgs{
			ProjectID:    "acme-platform",
			Region:       "europe-west1",
			Environment:  "staging",
			Prefix:       "acme",
			PodCIDR:      "10.64.0.0/20",
			PodRangeName: "gke-pods",
		})
		if err != nil {
			return err
		}
		_, err = NewNetwork(ctx, "net", cfg)
		return err
	})
	require.NoError(t, err)

	subnet := mocks.inputsFor(t, "acme-staging-subnet")
	ranges := subnet["secondaryIpRanges"].ArrayValue()
	require.Len(t, ranges, 2)
	assert.Equal(t, "gke-pods", ranges[0].ObjectValue()["rangeName"].StringValue())
	assert.Equal(t, "10.64.0.0/20", ranges[0].ObjectValue()["ipCidrRange"].StringValue())
}
