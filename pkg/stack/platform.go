package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/secretmanager"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/cloudbloc/gkestack/internal/labels"
	"github.com/cloudbloc/gkestack/pkg/config"
)

// PlatformArgs are the inputs for a whole platform stack. Only the four
// base parameters are required; everything else refines the profile the
// environment selects.
type PlatformArgs struct {
	ProjectID   string
	Region      string
	Environment string
	Prefix      string

	// Network and Cluster override individual profile defaults. Overrides
	// pass the same validation as direct construction.
	Network config.NetworkOverrides
	Cluster config.ClusterOverrides

	// Secrets lists logical ids for Secret Manager containers. nil means
	// the secrets group is not declared; an explicitly empty list is a
	// configuration mistake and fails.
	Secrets []string

	// Identity requests a workload identity binding. nil means the
	// identity group is not declared.
	Identity *config.IdentityArgs

	// Labels are merged over the profile's common labels.
	Labels map[string]string
}

// Platform is the composite component: it derives validated network and
// cluster configurations through the environment's profile and declares
// the dependent resource groups in order. The network comes first, the
// cluster depends on it, and the optional secrets and identity groups
// follow the cluster.
type Platform struct {
	pulumi.ResourceState

	// Profile and the two configurations are fixed at construction; the
	// declared resources never diverge from them.
	Profile       config.Profile
	NetworkConfig config.NetworkConfig
	ClusterConfig config.ClusterConfig

	Network *Network
	Cluster *Cluster

	secrets  *Secrets
	identity *WorkloadIdentity
}

// NewPlatform derives all configuration for the stack and declares its
// resource groups. Every policy check runs before the first resource is
// registered, so an invalid input aborts with no resources declared and
// the configuration error kinds surface unchanged through RunErr.
func NewPlatform(ctx *pulumi.Context, name string, args *PlatformArgs, opts ...pulumi.ResourceOption) (*Platform, error) {
	profile, err := config.ProfileForEnvironment(args.ProjectID, args.Region, args.Environment, args.Prefix)
	if err != nil {
		return nil, err
	}

	networkCfg, err := profile.NetworkConfig(args.Network)
	if err != nil {
		return nil, err
	}

	// The cluster addresses the subnet's secondary ranges by name, so the
	// network's range names carry over unless the caller overrode them.
	clusterOverrides := args.Cluster
	if clusterOverrides.PodRangeName == "" {
		clusterOverrides.PodRangeName = networkCfg.PodRangeName
	}
	if clusterOverrides.ServiceRangeName == "" {
		clusterOverrides.ServiceRangeName = networkCfg.ServiceRangeName
	}
	clusterCfg, err := profile.ClusterConfig(clusterOverrides)
	if err != nil {
		return nil, err
	}

	if args.Secrets != nil {
		if err := config.ValidateSecretIDs(args.Secrets); err != nil {
			return nil, err
		}
	}

	var identityCfg *config.IdentityConfig
	if args.Identity != nil {
		cfg, err := config.NewIdentityConfig(args.ProjectID, *args.Identity)
		if err != nil {
			return nil, err
		}
		identityCfg = &cfg
	}

	p := &Platform{
		Profile:       profile,
		NetworkConfig: networkCfg,
		ClusterConfig: clusterCfg,
	}
	if err := ctx.RegisterComponentResource("gkestack:index:Platform", name, p, opts...); err != nil {
		return nil, err
	}
	_ = ctx.Log.Debug(fmt.Sprintf("platform %s: profile=%s cluster=%s vpc=%s",
		name, profile.Kind, clusterCfg.ClusterName(), networkCfg.VPCName()), nil)

	p.Network, err = NewNetwork(ctx, fmt.Sprintf("%s-network", name), networkCfg,
		pulumi.Parent(p))
	if err != nil {
		return nil, err
	}

	p.Cluster, err = NewCluster(ctx, fmt.Sprintf("%s-cluster", name), clusterCfg, p.Network,
		p.componentLabels(labels.ComponentCluster, args.Labels),
		pulumi.Parent(p))
	if err != nil {
		return nil, err
	}

	if args.Secrets != nil {
		p.secrets, err = NewSecrets(ctx, fmt.Sprintf("%s-secrets", name), profile, args.Secrets,
			p.componentLabels(labels.ComponentSecrets, args.Labels),
			pulumi.Parent(p))
		if err != nil {
			return nil, err
		}
	}

	if identityCfg != nil {
		p.identity, err = NewWorkloadIdentity(ctx, fmt.Sprintf("%s-identity", name), *identityCfg,
			pulumi.Parent(p), pulumi.DependsOn([]pulumi.Resource{p.Cluster}))
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.RegisterResourceOutputs(p, pulumi.Map{
		"profile":              pulumi.String(profile.Kind.String()),
		"vpcName":              pulumi.String(networkCfg.VPCName()),
		"subnetName":           pulumi.String(networkCfg.SubnetName()),
		"clusterName":          pulumi.String(clusterCfg.ClusterName()),
		"workloadIdentityPool": pulumi.String(clusterCfg.WorkloadIdentityPool()),
	}); err != nil {
		return nil, err
	}
	return p, nil
}

// componentLabels builds the label set for one resource group: the
// profile's common labels, a component tag, and caller extras on top.
func (p *Platform) componentLabels(component string, extra map[string]string) map[string]string {
	return labels.New(p.Profile.Environment).
		WithProject(p.Profile.ProjectID).
		WithComponent(component).
		Merge(extra).
		Build()
}

// Secrets returns the secrets group, or ErrNotConfigured when the stack
// was declared without one.
func (p *Platform) Secrets() (*Secrets, error) {
	if p.secrets == nil {
		return nil, fmt.Errorf("%w: no secrets were declared for this platform", config.ErrNotConfigured)
	}
	return p.secrets, nil
}

// Identity returns the workload identity group, or ErrNotConfigured when
// the stack was declared without one.
func (p *Platform) Identity() (*WorkloadIdentity, error) {
	if p.identity == nil {
		return nil, fmt.Errorf("%w: no workload identity was declared for this platform", config.ErrNotConfigured)
	}
	return p.identity, nil
}

// Secret looks up a declared secret by its logical id. It fails with
// ErrNotConfigured when no secrets group exists and with ErrSecretNotFound
// for an unknown id.
func (p *Platform) Secret(id string) (*secretmanager.Secret, error) {
	secrets, err := p.Secrets()
	if err != nil {
		return nil, err
	}
	return secrets.Secret(id)
}
