package config

import "errors"

// Validation error kinds. Every configuration failure wraps exactly one of
// these (identity blanks additionally wrap ErrIncompleteIdentityConfig), so
// callers branch with errors.Is instead of matching message text. All of
// them are fail-fast construction errors: nothing is retried and no partial
// configuration is ever returned alongside one.
var (
	// ErrInvalidEnvironment is returned when an environment is not in the allow-list.
	ErrInvalidEnvironment = errors.New("invalid environment")

	// ErrInvalidRegion is returned when a region is not in the allow-list.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidMachineType is returned when a machine type is not in the allow-list.
	ErrInvalidMachineType = errors.New("invalid machine type")

	// ErrOutOfRange is returned when a numeric value is outside its inclusive bound.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMinExceedsMax is returned when minNodes is greater than the resolved maxNodes.
	ErrMinExceedsMax = errors.New("min nodes exceeds max nodes")

	// ErrMalformedCIDR is returned when a master CIDR is not a well-formed /28 block.
	ErrMalformedCIDR = errors.New("malformed CIDR")

	// ErrNotPrivateRange is returned when a master CIDR is outside the RFC 1918 ranges.
	ErrNotPrivateRange = errors.New("CIDR not in a private range")

	// ErrMisalignedBlock is returned when a /28 block does not start on a 16-address boundary.
	ErrMisalignedBlock = errors.New("CIDR block misaligned")

	// ErrEmptySecretList is returned when an explicitly supplied secret list is empty.
	ErrEmptySecretList = errors.New("secret list is empty")

	// ErrBlankSecretID is returned when a secret list contains a blank entry.
	ErrBlankSecretID = errors.New("blank secret id")

	// ErrSecretNotFound is returned when looking up a secret id that was never declared.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrIncompleteIdentityConfig is returned when a required workload identity
	// field is blank. The field-specific kind is wrapped alongside it.
	ErrIncompleteIdentityConfig = errors.New("incomplete workload identity config")

	// ErrInvalidServiceAccountIDLength is returned when a service account id is
	// not 6-30 characters, the length Google requires for account ids.
	ErrInvalidServiceAccountIDLength = errors.New("service account id must be 6-30 characters")

	// ErrBlankProjectID is returned when a workload identity binding has no project id.
	ErrBlankProjectID = errors.New("blank project id")

	// ErrBlankNamespace is returned when a workload identity binding has no namespace.
	ErrBlankNamespace = errors.New("blank namespace")

	// ErrBlankServiceAccountName is returned when a workload identity binding has
	// no Kubernetes service account name.
	ErrBlankServiceAccountName = errors.New("blank service account name")

	// ErrNotConfigured is returned by accessors for optional platform components
	// that were never declared.
	ErrNotConfigured = errors.New("component not configured")
)
