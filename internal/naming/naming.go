package naming

import "fmt"

// Naming functions for platform resources.
// All Google Cloud resources follow consistent {prefix}-{env}-{type}
// patterns to enable easy identification and cleanup.

func VPC(prefix, env string) string {
	return fmt.Sprintf("%s-%s-vpc", prefix, env)
}

func Subnet(prefix, env string) string {
	return fmt.Sprintf("%s-%s-subnet", prefix, env)
}

func Cluster(prefix, env string) string {
	return fmt.Sprintf("%s-%s-cluster", prefix, env)
}

func NodePool(prefix, env string) string {
	return fmt.Sprintf("%s-%s-node-pool", prefix, env)
}

func Router(prefix, env string) string {
	return fmt.Sprintf("%s-%s-router", prefix, env)
}

func NAT(prefix, env string) string {
	return fmt.Sprintf("%s-%s-nat", prefix, env)
}

func AllowInternalFirewall(prefix, env string) string {
	return fmt.Sprintf("%s-%s-allow-internal", prefix, env)
}

// Secret returns the Secret Manager id for a logical secret. Secret ids are
// project-global, so the prefix and environment keep stacks from colliding.
func Secret(prefix, env, id string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, env, id)
}

// WorkloadPool returns the workload identity pool identifier for a project.
// GKE uses exactly one pool per project, named by this fixed convention.
func WorkloadPool(projectID string) string {
	return fmt.Sprintf("%s.svc.id.goog", projectID)
}

// DefaultZone returns the default zone for a region ("-a" suffix).
func DefaultZone(region string) string {
	return fmt.Sprintf("%s-a", region)
}
