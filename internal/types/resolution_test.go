package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolutionDuration(t *testing.T) {
	tests := []struct {
		resolution Resolution
		expected   time.Duration
	}{
		{ResolutionSecond, time.Second},
		{ResolutionMinute, time.Minute},
		{ResolutionHour, time.Hour},
		{ResolutionDaily, 24 * time.Hour},
		{Resolution("tick"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.resolution), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resolution.Duration())
			assert.Equal(t, tt.expected > 0, tt.resolution.IsValid())
		})
	}
}

func TestParseResolution(t *testing.T) {
	resolution, err := ParseResolution("Daily")
	require.NoError(t, err)
	assert.Equal(t, ResolutionDaily, resolution)

	resolution, err = ParseResolution(" day ")
	require.NoError(t, err)
	assert.Equal(t, ResolutionDaily, resolution)

	resolution, err = ParseResolution("HOUR")
	require.NoError(t, err)
	assert.Equal(t, ResolutionHour, resolution)

	_, err = ParseResolution("tick")
	assert.Error(t, err)
}

func TestResolutionYAML(t *testing.T) {
	var holder struct {
		Resolution Resolution `yaml:"resolution"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("resolution: Hour"), &holder))
	assert.Equal(t, ResolutionHour, holder.Resolution)

	err := yaml.Unmarshal([]byte("resolution: weekly"), &holder)
	assert.Error(t, err)
}
