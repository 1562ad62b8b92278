// Package naming derives canonical names for Google Cloud resources.
//
// Every resource name is seeded by the stack prefix and environment and
// follows the pattern {prefix}-{env}-{type}. Keeping the derivation in one
// place guarantees that the network, cluster, and CLI layers agree on names
// without passing them around explicitly.
package naming
