package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cmd := Validate()

	require.NotNil(t, cmd)
	assert.Equal(t, "validate", cmd.Use)
	assert.Equal(t, "Check a manifest against the platform policy", cmd.Short)
	assert.Contains(t, cmd.Long, "Check a deployment manifest against the platform policy")
}

func TestValidate_ConfigFlag(t *testing.T) {
	cmd := Validate()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestValidate_RunE(t *testing.T) {
	cmd := Validate()
	assert.NotNil(t, cmd.RunE, "Validate command should have RunE function")
}
