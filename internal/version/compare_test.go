package version

import (
	"testing"

	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersionCompatibility(t *testing.T) {
	tests := []struct {
		name            string
		engineVersion   string
		requiredVersion string
		expectCode      errors.ErrorCode
		errorContains   string
	}{
		{name: "exact match", engineVersion: "0.3.0", requiredVersion: "0.3.0"},
		{name: "patch differs", engineVersion: "0.3.4", requiredVersion: "0.3.1"},
		{name: "v prefixes", engineVersion: "v1.2.0", requiredVersion: "v1.2.9"},
		{name: "prerelease engine", engineVersion: "1.2.0-alpha", requiredVersion: "1.2.0"},
		{name: "engine is main", engineVersion: "main", requiredVersion: "9.9.9"},
		{name: "algorithm is main", engineVersion: "0.3.0", requiredVersion: "main"},
		{name: "constraint satisfied", engineVersion: "0.3.2", requiredVersion: ">= 0.3, < 0.5"},
		{name: "caret constraint", engineVersion: "1.4.0", requiredVersion: "^1.2"},
		{
			name:            "minor differs",
			engineVersion:   "0.4.0",
			requiredVersion: "0.3.0",
			expectCode:      errors.ErrCodeVersionMismatch,
			errorContains:   "minor version mismatch",
		},
		{
			name:            "major differs",
			engineVersion:   "2.0.0",
			requiredVersion: "1.2.0",
			expectCode:      errors.ErrCodeVersionMismatch,
			errorContains:   "major version mismatch",
		},
		{
			name:            "constraint not satisfied",
			engineVersion:   "0.5.0",
			requiredVersion: ">= 0.3, < 0.5",
			expectCode:      errors.ErrCodeVersionMismatch,
			errorContains:   "does not satisfy",
		},
		{
			name:            "invalid engine version",
			engineVersion:   "not-a-version",
			requiredVersion: "1.2.0",
			expectCode:      errors.ErrCodeInvalidVersion,
			errorContains:   "invalid engine version",
		},
		{
			name:            "empty required version",
			engineVersion:   "1.2.0",
			requiredVersion: "",
			expectCode:      errors.ErrCodeInvalidVersion,
			errorContains:   "invalid required version",
		},
		{
			name:            "invalid constraint",
			engineVersion:   "1.2.0",
			requiredVersion: ">= banana",
			expectCode:      errors.ErrCodeInvalidVersion,
			errorContains:   "invalid version constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersionCompatibility(tt.engineVersion, tt.requiredVersion)

			if tt.expectCode == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expectCode))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
