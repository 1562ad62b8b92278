package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/cloudbloc/gkestack/pkg/config"
)

// WorkloadIdentity groups a Google service account and the IAM binding
// that lets a Kubernetes service account in the cluster's identity pool
// impersonate it.
type WorkloadIdentity struct {
	pulumi.ResourceState

	// Config is the resolved binding the resources were declared from.
	Config config.IdentityConfig

	Account *serviceaccount.Account
	Binding *serviceaccount.IAMMember
}

// NewWorkloadIdentity declares the identity resource group. Callers pass a
// DependsOn for the cluster component: the binding's member refers to the
// cluster's workload identity pool, which only exists once the cluster does.
func NewWorkloadIdentity(ctx *pulumi.Context, name string, cfg config.IdentityConfig, opts ...pulumi.ResourceOption) (*WorkloadIdentity, error) {
	w := &WorkloadIdentity{Config: cfg}
	if err := ctx.RegisterComponentResource("gkestack:index:WorkloadIdentity", name, w, opts...); err != nil {
		return nil, err
	}

	var err error
	w.Account, err = serviceaccount.NewAccount(ctx, cfg.ServiceAccountID, &serviceaccount.AccountArgs{
		AccountId:   pulumi.String(cfg.ServiceAccountID),
		Project:     pulumi.String(cfg.ProjectID),
		DisplayName: pulumi.String(fmt.Sprintf("Workload identity for %s/%s", cfg.Namespace, cfg.ServiceAccountName)),
	}, pulumi.Parent(w))
	if err != nil {
		return nil, fmt.Errorf("failed to declare service account: %w", err)
	}

	w.Binding, err = serviceaccount.NewIAMMember(ctx, fmt.Sprintf("%s-binding", name), &serviceaccount.IAMMemberArgs{
		ServiceAccountId: w.Account.Name,
		Role:             pulumi.String(cfg.BindingRole()),
		Member:           pulumi.String(cfg.Member()),
	}, pulumi.Parent(w))
	if err != nil {
		return nil, fmt.Errorf("failed to declare identity binding: %w", err)
	}

	if err := ctx.RegisterResourceOutputs(w, pulumi.Map{
		"email":  w.Account.Email,
		"member": pulumi.String(cfg.Member()),
	}); err != nil {
		return nil, err
	}
	return w, nil
}
