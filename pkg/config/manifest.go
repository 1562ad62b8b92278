package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// DefaultManifestFilename is the manifest filename looked up when no
// explicit path is given.
const DefaultManifestFilename = "gkestack.yaml"

// ManifestVersion is the manifest schema version this build understands.
const ManifestVersion = "v1"

var manifestValidator = validator.New()

// Manifest is the on-disk description of one platform deployment. The
// manifest layer checks shape only: required fields present, prefix a
// legal name seed. Policy checks (allowed regions, machine types, bounds,
// CIDRs) happen during Resolve so their error kinds surface unchanged.
type Manifest struct {
	Version     string `yaml:"version" json:"version" validate:"required,eq=v1"`
	ProjectID   string `yaml:"projectId" json:"projectId" validate:"required"`
	Prefix      string `yaml:"prefix" json:"prefix" validate:"required"`
	Environment string `yaml:"environment" json:"environment" validate:"required"`
	Region      string `yaml:"region" json:"region" validate:"required"`

	// Profile forces a profile kind instead of the environment mapping.
	Profile string `yaml:"profile,omitempty" json:"profile,omitempty"`

	Network  NetworkOverrides `yaml:"network,omitempty" json:"network,omitempty"`
	Cluster  ClusterOverrides `yaml:"cluster,omitempty" json:"cluster,omitempty"`
	Secrets  []string         `yaml:"secrets,omitempty" json:"secrets,omitempty"`
	Identity *IdentityArgs    `yaml:"identity,omitempty" json:"identity,omitempty"`

	// Labels are merged over the derived common labels.
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Resolved holds every validated configuration a manifest describes.
// Secrets stays nil when the manifest omits the block, so callers can
// tell "no secrets" from "empty list was rejected". Identity is nil when
// no binding was requested.
type Resolved struct {
	Profile  Profile
	Network  NetworkConfig
	Cluster  ClusterConfig
	Secrets  []string
	Identity *IdentityConfig
	Labels   map[string]string
}

// LoadManifest reads and validates a manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := m.validateShape(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteManifest marshals a manifest to YAML and writes it to path.
func WriteManifest(path string, m *Manifest) error {
	if err := m.validateShape(); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// DefaultManifestPath returns the manifest path in the current working
// directory.
func DefaultManifestPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultManifestFilename
	}
	return filepath.Join(cwd, DefaultManifestFilename)
}

func (m *Manifest) validateShape() error {
	if err := manifestValidator.Struct(m); err != nil {
		return formatValidationError(err)
	}

	// Every derived resource name is seeded by the prefix, and GCP resource
	// names follow the DNS-1035 label grammar.
	if msgs := validation.IsDNS1035Label(m.Prefix); len(msgs) > 0 {
		return fmt.Errorf("prefix %q is not a valid name seed: %s", m.Prefix, strings.Join(msgs, "; "))
	}
	return nil
}

// Resolve derives and validates everything the manifest describes: the
// profile, both configurations, and the optional secrets and identity
// blocks. Shape is re-checked first so a hand-built Manifest gets the
// same guarantees as a parsed one; after that the first policy violation
// aborts resolution.
func (m *Manifest) Resolve() (*Resolved, error) {
	if err := m.validateShape(); err != nil {
		return nil, err
	}

	profile, err := ProfileForEnvironment(m.ProjectID, m.Region, m.Environment, m.Prefix)
	if err != nil {
		return nil, err
	}
	if m.Profile != "" {
		kind := ProfileKind(m.Profile)
		if !kind.IsValid() {
			return nil, fmt.Errorf("unknown profile %q, want one of %q, %q, %q",
				m.Profile, ProfileCostOptimized, ProfileBalanced, ProfileHighAvailability)
		}
		profile.Kind = kind
	}

	network, err := profile.NetworkConfig(m.Network)
	if err != nil {
		return nil, err
	}

	// The cluster consumes the network's secondary ranges by name.
	clusterOverrides := m.Cluster
	if clusterOverrides.PodRangeName == "" {
		clusterOverrides.PodRangeName = network.PodRangeName
	}
	if clusterOverrides.ServiceRangeName == "" {
		clusterOverrides.ServiceRangeName = network.ServiceRangeName
	}
	cluster, err := profile.ClusterConfig(clusterOverrides)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Profile: profile,
		Network: network,
		Cluster: cluster,
		Labels:  profile.CommonLabels(),
	}
	for k, v := range m.Labels {
		resolved.Labels[k] = v
	}

	if m.Secrets != nil {
		if err := ValidateSecretIDs(m.Secrets); err != nil {
			return nil, err
		}
		resolved.Secrets = m.Secrets
	}

	if m.Identity != nil {
		identity, err := NewIdentityConfig(m.ProjectID, *m.Identity)
		if err != nil {
			return nil, err
		}
		resolved.Identity = &identity
	}

	return resolved, nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	if len(msgs) == 1 {
		return fmt.Errorf("invalid manifest: %s", msgs[0])
	}
	return fmt.Errorf("invalid manifest:\n  - %s", strings.Join(msgs, "\n  - "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required but missing", e.Field())
	case "eq":
		return fmt.Sprintf("field %q must be %q", e.Field(), e.Param())
	default:
		return fmt.Sprintf("field %q failed validation (%s)", e.Field(), e.Tag())
	}
}
