package labels

// Standard label keys for Google Cloud resources.
// GCP label keys must match [a-z][a-z0-9_-]*, so no domain prefix.
const (
	// KeyEnvironment identifies which environment a resource belongs to.
	KeyEnvironment = "environment"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "managed-by"

	// KeyProject carries the Google Cloud project a resource belongs to.
	KeyProject = "project"

	// KeyComponent identifies the platform component (network, cluster, ...).
	KeyComponent = "component"
)

// ManagedByGKEStack is the value all resources created by this library carry.
const ManagedByGKEStack = "gkestack"

// Component values.
const (
	ComponentNetwork  = "network"
	ComponentCluster  = "cluster"
	ComponentSecrets  = "secrets"
	ComponentIdentity = "identity"
)

// Builder provides a fluent interface for building GCP resource labels.
type Builder struct {
	labels map[string]string
}

// New creates a label builder with the environment and manager pre-set.
func New(env string) *Builder {
	return &Builder{
		labels: map[string]string{
			KeyEnvironment: env,
			KeyManagedBy:   ManagedByGKEStack,
		},
	}
}

// WithProject adds the logical project label.
func (b *Builder) WithProject(project string) *Builder {
	b.labels[KeyProject] = project
	return b
}

// WithComponent adds a component label (e.g. "network", "cluster").
func (b *Builder) WithComponent(component string) *Builder {
	b.labels[KeyComponent] = component
	return b
}

// Merge adds all labels from the provided map.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.labels[k] = v
	}
	return b
}

// Build returns a copy of the labels map.
// Returns a copy to prevent external mutations.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.labels))
	for k, v := range b.labels {
		result[k] = v
	}
	return result
}
