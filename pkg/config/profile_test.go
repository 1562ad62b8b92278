package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForEnvironment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		env      string
		wantKind ProfileKind
		wantErr  error
	}{
		{name: "dev maps to cost optimized", env: "dev", wantKind: ProfileCostOptimized},
		{name: "staging maps to balanced", env: "staging", wantKind: ProfileBalanced},
		{name: "prod maps to high availability", env: "prod", wantKind: ProfileHighAvailability},
		{name: "unknown environment fails", env: "qa", wantErr: ErrInvalidEnvironment},
		{name: "empty environment fails", env: "", wantErr: ErrInvalidEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := ProfileForEnvironment("acme-platform", "us-central1", tt.env, "myapp")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, p.Kind)
			assert.Equal(t, tt.env, p.Environment)
		})
	}
}

func TestProfileKind_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, ProfileCostOptimized.IsValid())
	assert.True(t, ProfileBalanced.IsValid())
	assert.True(t, ProfileHighAvailability.IsValid())
	assert.False(t, ProfileKind("turbo").IsValid())
	assert.False(t, ProfileKind("").IsValid())
}

func TestProfile_ClusterConfigDefaults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		env             string
		wantMachineType string
		wantInitial     int
		wantMin         int
		wantMax         int
		wantDisk        int
		wantSpot        bool
	}{
		{
			name:            "cost optimized",
			env:             "dev",
			wantMachineType: "e2-medium",
			wantInitial:     1,
			wantMin:         1,
			wantMax:         3,
			wantDisk:        50,
			wantSpot:        true,
		},
		{
			name:            "balanced",
			env:             "staging",
			wantMachineType: "n2-standard-2",
			wantInitial:     2,
			wantMin:         2,
			wantMax:         5,
			wantDisk:        75,
			wantSpot:        true,
		},
		{
			name:            "high availability",
			env:             "prod",
			wantMachineType: "n2-standard-4",
			wantInitial:     3,
			wantMin:         3,
			wantMax:         10,
			wantDisk:        100,
			wantSpot:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := ProfileForEnvironment("acme-platform", "us-central1", tt.env, "myapp")
			require.NoError(t, err)

			cfg, err := p.ClusterConfig(ClusterOverrides{})
			require.NoError(t, err)

			assert.Equal(t, tt.wantMachineType, cfg.MachineType)
			assert.Equal(t, tt.wantInitial, cfg.InitialNodeCount)
			assert.Equal(t, tt.wantMin, cfg.MinNodes)
			assert.Equal(t, tt.wantMax, cfg.MaxNodes)
			assert.Equal(t, tt.wantDisk, cfg.DiskSizeGB)
			assert.Equal(t, tt.wantSpot, cfg.UseSpotInstances)
		})
	}
}

func TestProfile_ClusterConfigOverrides(t *testing.T) {
	t.Parallel()
	p, err := ProfileForEnvironment("acme-platform", "us-central1", "prod", "myapp")
	require.NoError(t, err)

	cfg, err := p.ClusterConfig(ClusterOverrides{MaxNodes: 20})
	require.NoError(t, err)

	// The override lands, the remaining profile values survive.
	assert.Equal(t, 20, cfg.MaxNodes)
	assert.Equal(t, "n2-standard-4", cfg.MachineType)
	assert.Equal(t, 3, cfg.MinNodes)
	assert.False(t, cfg.UseSpotInstances)
}

func TestProfile_ClusterConfigOverridesRevalidated(t *testing.T) {
	t.Parallel()
	p, err := ProfileForEnvironment("acme-platform", "us-central1", "prod", "myapp")
	require.NoError(t, err)

	_, err = p.ClusterConfig(ClusterOverrides{MachineType: "e2-huge"})
	assert.ErrorIs(t, err, ErrInvalidMachineType)

	_, err = p.ClusterConfig(ClusterOverrides{MaxNodes: 99})
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Pushing min above the profile's max trips the cross-field check.
	_, err = p.ClusterConfig(ClusterOverrides{MinNodes: 12})
	assert.ErrorIs(t, err, ErrMinExceedsMax)
}

func TestProfile_SpotOverrideOnHighAvailability(t *testing.T) {
	t.Parallel()
	p, err := ProfileForEnvironment("acme-platform", "us-central1", "prod", "myapp")
	require.NoError(t, err)

	spot := true
	cfg, err := p.ClusterConfig(ClusterOverrides{UseSpotInstances: &spot})
	require.NoError(t, err)
	assert.True(t, cfg.UseSpotInstances)
}

func TestProfile_NetworkConfig(t *testing.T) {
	t.Parallel()
	p, err := ProfileForEnvironment("acme-platform", "europe-west1", "staging", "myapp")
	require.NoError(t, err)

	cfg, err := p.NetworkConfig(NetworkOverrides{PrimaryCIDR: "10.50.0.0/16"})
	require.NoError(t, err)

	assert.Equal(t, "10.50.0.0/16", cfg.PrimaryCIDR)
	assert.Equal(t, "10.11.0.0/21", cfg.PodCIDR)
	assert.Equal(t, "myapp-staging-vpc", cfg.VPCName())
}

func TestProfile_CommonLabels(t *testing.T) {
	t.Parallel()
	p, err := ProfileForEnvironment("acme-platform", "us-central1", "dev", "myapp")
	require.NoError(t, err)

	got := p.CommonLabels()
	assert.Equal(t, "dev", got["environment"])
	assert.Equal(t, "gkestack", got["managed-by"])
	assert.Equal(t, "acme-platform", got["project"])
}
