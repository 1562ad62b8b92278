package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudbloc/gkestack/pkg/config"
)

func writeManifestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gkestack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validManifestYAML = `version: v1
projectId: acme-platform
prefix: myapp
environment: staging
region: europe-west1
secrets:
  - db-password
`

func TestValidate(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		path := writeManifestFile(t, validManifestYAML)

		output := captureOutput(func() {
			err := Validate(path)
			assert.NoError(t, err)
		})

		assert.Contains(t, output, "is valid")
		assert.Contains(t, output, "balanced (staging)")
		assert.Contains(t, output, "myapp-staging-cluster")
		assert.Contains(t, output, "myapp-staging-vpc (10.0.0.0/16)")
		assert.Contains(t, output, "1 declared")
	})

	t.Run("policy violation carries the error kind", func(t *testing.T) {
		path := writeManifestFile(t, `version: v1
projectId: acme-platform
prefix: myapp
environment: staging
region: mars-north1
`)

		err := Validate(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidRegion)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("shape violation names the field", func(t *testing.T) {
		path := writeManifestFile(t, `version: v1
prefix: myapp
environment: dev
region: us-central1
`)

		err := Validate(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ProjectID")
	})

	t.Run("missing file", func(t *testing.T) {
		err := Validate(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read manifest")
	})
}

func TestLoadManifest_DefaultLookup(t *testing.T) {
	t.Run("falls back to gkestack.yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.DefaultManifestFilename), []byte(validManifestYAML), 0o644))

		oldDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(oldDir)

		path, manifest, err := loadManifest("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultManifestFilename, path)
		assert.Equal(t, "acme-platform", manifest.ProjectID)
	})

	t.Run("hints at init when nothing is found", func(t *testing.T) {
		oldDir, _ := os.Getwd()
		os.Chdir(t.TempDir())
		defer os.Chdir(oldDir)

		_, _, err := loadManifest("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Run 'gkestack init'")
	})
}
