// Package stack declares the Google Cloud resources for a private GKE
// platform as Pulumi component resources.
//
// Each component groups the resources for one concern: Network (VPC,
// subnetwork, firewall, NAT), Cluster (private GKE cluster and its node
// pool), Secrets (Secret Manager containers), and WorkloadIdentity
// (Google service account bound to a Kubernetes service account).
// Platform composes all four from a single set of inputs, deriving the
// validated configurations through pkg/config first, so no resource is
// ever declared from unvalidated input.
package stack
