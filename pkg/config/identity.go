package config

import (
	"fmt"
	"strings"

	"github.com/cloudbloc/gkestack/internal/naming"
)

// Service account ids must satisfy the GCP naming rule for the local part
// of a service account email.
const (
	MinServiceAccountIDLength = 6
	MaxServiceAccountIDLength = 30
)

// WorkloadIdentityRole is the IAM role granted on the Google service
// account so the bound Kubernetes service account can impersonate it.
const WorkloadIdentityRole = "roles/iam.workloadIdentityUser"

// IdentityArgs are the raw inputs for a workload identity binding: the
// Google service account to create and the Kubernetes service account that
// will impersonate it.
type IdentityArgs struct {
	ServiceAccountID   string `yaml:"serviceAccountId" json:"serviceAccountId"`
	Namespace          string `yaml:"namespace" json:"namespace"`
	ServiceAccountName string `yaml:"serviceAccountName" json:"serviceAccountName"`
}

// IdentityConfig is a validated workload identity binding.
type IdentityConfig struct {
	ProjectID          string
	ServiceAccountID   string
	Namespace          string
	ServiceAccountName string
}

// NewIdentityConfig validates identity inputs and returns the resolved
// binding. Blank fields are checked one at a time, in declaration order,
// so the first missing field is the one reported. Each blank-field error
// matches both ErrIncompleteIdentityConfig and the field-specific kind.
func NewIdentityConfig(projectID string, args IdentityArgs) (IdentityConfig, error) {
	if strings.TrimSpace(projectID) == "" {
		return IdentityConfig{}, fmt.Errorf("%w: %w", ErrIncompleteIdentityConfig, ErrBlankProjectID)
	}
	if strings.TrimSpace(args.ServiceAccountID) == "" {
		return IdentityConfig{}, fmt.Errorf("%w: serviceAccountId is required", ErrIncompleteIdentityConfig)
	}
	if strings.TrimSpace(args.Namespace) == "" {
		return IdentityConfig{}, fmt.Errorf("%w: %w", ErrIncompleteIdentityConfig, ErrBlankNamespace)
	}
	if strings.TrimSpace(args.ServiceAccountName) == "" {
		return IdentityConfig{}, fmt.Errorf("%w: %w", ErrIncompleteIdentityConfig, ErrBlankServiceAccountName)
	}
	if n := len(args.ServiceAccountID); n < MinServiceAccountIDLength || n > MaxServiceAccountIDLength {
		return IdentityConfig{}, fmt.Errorf("%w: %q is %d characters, want %d-%d",
			ErrInvalidServiceAccountIDLength, args.ServiceAccountID, n,
			MinServiceAccountIDLength, MaxServiceAccountIDLength)
	}

	return IdentityConfig{
		ProjectID:          projectID,
		ServiceAccountID:   args.ServiceAccountID,
		Namespace:          args.Namespace,
		ServiceAccountName: args.ServiceAccountName,
	}, nil
}

// Member returns the IAM member string that identifies the Kubernetes
// service account inside the project's workload identity pool.
func (c IdentityConfig) Member() string {
	return fmt.Sprintf("serviceAccount:%s[%s/%s]",
		naming.WorkloadPool(c.ProjectID), c.Namespace, c.ServiceAccountName)
}

// BindingRole returns the role granted to Member on the Google service
// account.
func (c IdentityConfig) BindingRole() string {
	return WorkloadIdentityRole
}

// Email returns the email of the Google service account once created.
func (c IdentityConfig) Email() string {
	return fmt.Sprintf("%s@%s.iam.gserviceaccount.com", c.ServiceAccountID, c.ProjectID)
}
