package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"k8s.io/apimachinery/pkg/util/validation"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	ProjectID   string
	Region      string
	Environment string
	Prefix      string

	// SecretIDs is a comma-separated list; empty means no secrets block.
	SecretIDs string

	BindIdentity       bool
	ServiceAccountID   string
	Namespace          string
	ServiceAccountName string
}

// RunWizard runs the interactive manifest wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:      "us-central1",
		Environment: "dev",
	}

	form := huh.NewForm(
		// Project
		huh.NewGroup(
			huh.NewInput().
				Title("Project id").
				Description("The Google Cloud project to deploy into").
				Placeholder("my-project-123").
				Value(&result.ProjectID).
				Validate(validateProjectID),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("Google Cloud region for the network and cluster").
				Options(
					huh.NewOption("Iowa, USA (us-central1)", "us-central1"),
					huh.NewOption("South Carolina, USA (us-east1)", "us-east1"),
					huh.NewOption("Belgium (europe-west1)", "europe-west1"),
					huh.NewOption("Frankfurt, Germany (europe-west3)", "europe-west3"),
					huh.NewOption("Taiwan (asia-east1)", "asia-east1"),
				).
				Value(&result.Region),
		),

		// Environment selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Environment").
				Description("dev: spot nodes, lowest cost | staging: balanced | prod: high availability").
				Options(
					huh.NewOption("Development (cost-optimized profile)", "dev"),
					huh.NewOption("Staging (balanced profile)", "staging"),
					huh.NewOption("Production (high-availability profile)", "prod"),
				).
				Value(&result.Environment),
		),

		// Name seed
		huh.NewGroup(
			huh.NewInput().
				Title("Prefix").
				Description("Seed for every derived resource name (DNS-safe, lowercase)").
				Placeholder("myapp").
				Value(&result.Prefix).
				Validate(validatePrefix),
		),

		// Optional secrets
		huh.NewGroup(
			huh.NewInput().
				Title("Secrets (optional)").
				Description("Comma-separated logical secret ids. Leave empty to skip.").
				Placeholder("db-password, api-key").
				Value(&result.SecretIDs).
				Validate(validateSecretList),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// runIdentityGroup prompts for the optional workload identity binding.
func runIdentityGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Bind a workload identity?").
				Description("Lets a Kubernetes service account act as a Google service account").
				Value(&result.BindIdentity),
		).Title("Workload Identity"),
	).RunWithContext(ctx)

	if err != nil || !result.BindIdentity {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google service account id").
				Description("Local part of the service account email").
				Placeholder("payments-app").
				Value(&result.ServiceAccountID).
				Validate(validateServiceAccountID),
			huh.NewInput().
				Title("Kubernetes namespace").
				Placeholder("payments").
				Value(&result.Namespace).
				Validate(validateRequired("namespace")),
			huh.NewInput().
				Title("Kubernetes service account").
				Placeholder("payments-api").
				Value(&result.ServiceAccountName).
				Validate(validateRequired("service account name")),
		).Title("Workload Identity"),
	).RunWithContext(ctx)
}

// ToManifest converts the wizard result to a manifest.
func (r *WizardResult) ToManifest() *Manifest {
	m := &Manifest{
		Version:     ManifestVersion,
		ProjectID:   r.ProjectID,
		Prefix:      r.Prefix,
		Environment: r.Environment,
		Region:      r.Region,
	}
	if ids := splitSecretIDs(r.SecretIDs); ids != nil {
		m.Secrets = ids
	}
	if r.BindIdentity {
		m.Identity = &IdentityArgs{
			ServiceAccountID:   r.ServiceAccountID,
			Namespace:          r.Namespace,
			ServiceAccountName: r.ServiceAccountName,
		}
	}
	return m
}

// splitSecretIDs turns the comma-separated wizard input into a secret id
// list. A blank input returns nil so the manifest omits the block entirely.
// Entries are trimmed but otherwise kept as-is; ValidateSecretIDs remains
// the authority on blank entries.
func splitSecretIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		ids = append(ids, strings.TrimSpace(part))
	}
	return ids
}

// validateProjectID checks the Google Cloud project id grammar.
func validateProjectID(s string) error {
	if s == "" {
		return fmt.Errorf("project id is required")
	}
	if len(s) < 6 || len(s) > 30 {
		return fmt.Errorf("project id must be 6-30 characters")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("project id can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] < 'a' || s[0] > 'z' {
		return fmt.Errorf("project id must start with a lowercase letter")
	}
	if s[len(s)-1] == '-' {
		return fmt.Errorf("project id cannot end with a hyphen")
	}
	return nil
}

// validatePrefix applies the same name-seed rule manifest loading does.
func validatePrefix(s string) error {
	if s == "" {
		return fmt.Errorf("prefix is required")
	}
	if msgs := validation.IsDNS1035Label(s); len(msgs) > 0 {
		return fmt.Errorf("%s", msgs[0])
	}
	return nil
}

// validateSecretList checks the optional comma-separated secret id input.
func validateSecretList(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Optional
	}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("secret ids cannot be blank")
		}
	}
	return nil
}

// validateServiceAccountID checks the service account id length rule.
func validateServiceAccountID(s string) error {
	if s == "" {
		return fmt.Errorf("service account id is required")
	}
	if len(s) < MinServiceAccountIDLength || len(s) > MaxServiceAccountIDLength {
		return fmt.Errorf("service account id must be %d-%d characters",
			MinServiceAccountIDLength, MaxServiceAccountIDLength)
	}
	return nil
}

// validateRequired returns a validator that rejects blank input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
