package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbs-cloud/torquectl/internal/config"
)

func TestTargetFlags_Resolve(t *testing.T) {
	flags := TargetFlags{
		Space:       "demo",
		Environment: "env1",
		Grain:       "web",
		Resource:    "aws_instance.a",
	}

	target, err := flags.Resolve(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "demo", target.Space)
	assert.Equal(t, "env1", target.Environment)
	assert.Equal(t, "web", target.GrainFullname)
	assert.Equal(t, "aws_instance.a", target.Resource)
}

func TestTargetFlags_SpaceFromConfig(t *testing.T) {
	flags := TargetFlags{
		Environment: "env1",
		Grain:       "web",
		Resource:    "aws_instance.a",
	}

	target, err := flags.Resolve(&config.Config{Space: "03-Live"})
	require.NoError(t, err)
	assert.Equal(t, "03-Live", target.Space)
}

func TestTargetFlags_FlagWinsOverConfig(t *testing.T) {
	flags := TargetFlags{
		Space:       "from-flag",
		Environment: "env1",
		Grain:       "web",
		Resource:    "aws_instance.a",
	}

	target, err := flags.Resolve(&config.Config{Space: "from-config"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", target.Space)
}

func TestTargetFlags_MissingFields(t *testing.T) {
	flags := TargetFlags{Space: "demo"}

	_, err := flags.Resolve(&config.Config{})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidInput, exitErr.Code)
	assert.Contains(t, err.Error(), "--environment")
	assert.Contains(t, err.Error(), "--grain")
	assert.Contains(t, err.Error(), "--resource")
	assert.NotContains(t, err.Error(), "--space")
}

func TestExitError(t *testing.T) {
	err := NewExecutionError("failed to run action", assert.AnError)
	assert.Equal(t, ExitExecutionFailed, err.Code)
	assert.Contains(t, err.Error(), "failed to run action")
	assert.ErrorIs(t, err, assert.AnError)

	bare := NewConfigError("no token", nil)
	assert.Equal(t, "no token", bare.Error())
	assert.Equal(t, ExitConfigError, bare.Code)
}
