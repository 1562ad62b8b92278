// Package config is the policy and derivation engine for gkestack.
//
// It turns four high-level parameters (project, region, environment, naming
// prefix) into fully resolved, policy-compliant network and cluster
// configurations. Construction is pure and deterministic: allow-list and
// bounds validation, default filling, and canonical name derivation happen
// in one pass, and the first violated rule aborts construction before a
// partial value can escape. Resolved configurations are treated as
// immutable and are safe to share across goroutines.
//
// Validation failures wrap sentinel error kinds (ErrInvalidRegion,
// ErrMalformedCIDR, ...) so callers can branch with errors.Is while still
// getting a message that names the offending field, its value, and the
// accepted values.
package config
