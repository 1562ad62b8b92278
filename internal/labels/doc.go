// Package labels provides consistent labeling for Google Cloud resources.
//
// Unlike Kubernetes labels, GCP resource labels do not allow domain-prefixed
// keys, so the standard keys are plain words. A builder constructs label sets
// with environment, project, and component identification so resources
// belonging to one platform stack can be grouped and billed together.
package labels
