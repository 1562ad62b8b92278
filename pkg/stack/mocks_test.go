package stack

import (
	"sync"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// stackMocks satisfies pulumi's mock monitor. Every resource gets a
// deterministic id and echoes its inputs back as outputs, and the mock
// records each declaration so tests can assert on the exact properties a
// component declared without an engine.
type stackMocks struct {
	mu        sync.Mutex
	resources []declaredResource
}

type declaredResource struct {
	Token  string
	Name   string
	Inputs resource.PropertyMap
}

func (m *stackMocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	m.mu.Lock()
	m.resources = append(m.resources, declaredResource{
		Token:  args.TypeToken,
		Name:   args.Name,
		Inputs: args.Inputs,
	})
	m.mu.Unlock()
	return args.Name + "-id", args.Inputs, nil
}

func (m *stackMocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	return args.Args, nil
}

// inputsFor returns the declared inputs of the named resource, failing
// the test when the resource was never declared.
func (m *stackMocks) inputsFor(t *testing.T, name string) resource.PropertyMap {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.resources {
		if r.Name == name {
			return r.Inputs
		}
	}
	t.Fatalf("resource %q was never declared", name)
	return nil
}

// declared reports whether a resource with the given name was registered.
func (m *stackMocks) declared(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.resources {
		if r.Name == name {
			return true
		}
	}
	return false
}

// namesByToken returns the names of all declared resources of one type.
func (m *stackMocks) namesByToken(token string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for _, r := range m.resources {
		if r.Token == token {
			names = append(names, r.Name)
		}
	}
	return names
}

// nonStackResources returns every declared resource except the root stack
// pulumi registers for any program.
func (m *stackMocks) nonStackResources() []declaredResource {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []declaredResource
	for _, r := range m.resources {
		if r.Token == "pulumi:pulumi:Stack" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// runWithMocks runs a pulumi program against a fresh mock monitor and
// returns the monitor for post-run assertions.
func runWithMocks(t *testing.T, program pulumi.RunFunc) (*stackMocks, error) {
	t.Helper()
	m := &stackMocks{}
	err := pulumi.RunErr(program, pulumi.WithMocks("acme-platform", "unit", m))
	return m, err
}
