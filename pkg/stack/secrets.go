package stack

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/secretmanager"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/cloudbloc/gkestack/internal/naming"
	"github.com/cloudbloc/gkestack/pkg/config"
)

// Secrets groups one Secret Manager container per logical secret id. Only
// the containers are declared; secret versions (the actual payloads) are
// added out of band so no sensitive value ever passes through the stack.
type Secrets struct {
	pulumi.ResourceState

	ids     []string
	secrets map[string]*secretmanager.Secret
}

// NewSecrets declares the secrets resource group for a profile. The id
// list must already be validated; ids are logical names, and the created
// Secret Manager ids are namespaced with the profile's prefix and
// environment so stacks in one project do not collide.
func NewSecrets(ctx *pulumi.Context, name string, profile config.Profile, ids []string, labels map[string]string, opts ...pulumi.ResourceOption) (*Secrets, error) {
	s := &Secrets{
		ids:     append([]string(nil), ids...),
		secrets: make(map[string]*secretmanager.Secret, len(ids)),
	}
	if err := ctx.RegisterComponentResource("gkestack:index:Secrets", name, s, opts...); err != nil {
		return nil, err
	}

	for _, id := range s.ids {
		secret, err := secretmanager.NewSecret(ctx, fmt.Sprintf("%s-%s", name, id), &secretmanager.SecretArgs{
			SecretId: pulumi.String(naming.Secret(profile.Prefix, profile.Environment, id)),
			Project:  pulumi.String(profile.ProjectID),
			Labels:   pulumi.ToStringMap(labels),
			Replication: &secretmanager.SecretReplicationArgs{
				Auto: &secretmanager.SecretReplicationAutoArgs{},
			},
		}, pulumi.Parent(s))
		if err != nil {
			return nil, fmt.Errorf("failed to declare secret %q: %w", id, err)
		}
		s.secrets[id] = secret
	}

	if err := ctx.RegisterResourceOutputs(s, pulumi.Map{
		"secretCount": pulumi.Int(len(s.ids)),
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// IDs returns the logical secret ids in declaration order.
func (s *Secrets) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Secret looks up a declared secret by its logical id. Unknown ids fail
// with ErrSecretNotFound and the error names the ids that exist.
func (s *Secrets) Secret(id string) (*secretmanager.Secret, error) {
	secret, ok := s.secrets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q, declared ids are %v", config.ErrSecretNotFound, id, s.ids)
	}
	return secret, nil
}
