package engine

import (
	"context"
	"testing"

	engine_types "github.com/rxtech-lab/argo-algorithm/internal/backtest/engine"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/internal/version"
	"github.com/rxtech-lab/argo-algorithm/mocks"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCheckInBacktestEngine(t *testing.T) {
	originalVersion := version.Version
	defer func() { version.Version = originalVersion }()

	tests := []struct {
		name             string
		engineVersion    string
		requiredVersion  string
		expectError      bool
		errorMsgContains string
	}{
		{
			name:            "compatible versions - patch differs",
			engineVersion:   "1.2.5",
			requiredVersion: "1.2.0",
			expectError:     false,
		},
		{
			name:             "incompatible - minor version mismatch",
			engineVersion:    "1.3.0",
			requiredVersion:  "1.2.0",
			expectError:      true,
			errorMsgContains: "minor version mismatch",
		},
		{
			name:            "compatible - engine is main (dev build skips check)",
			engineVersion:   "main",
			requiredVersion: "1.2.0",
			expectError:     false,
		},
		{
			name:            "compatible - constraint satisfied",
			engineVersion:   "1.4.2",
			requiredVersion: ">= 1.4.0, < 2.0.0",
			expectError:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version.Version = tt.engineVersion

			alg := &versionedAlgorithm{
				scriptedAlgorithm: scriptedAlgorithm{name: "Versioned"},
				version:           tt.requiredVersion,
			}

			backtestEngine := newTestEngine(t, dailyZeroCommissionConfig, mocks.Ramp("SPY", jan(1), types.ResolutionDaily, 2, 100, 1))
			require.NoError(t, backtestEngine.LoadAlgorithm(alg))

			err := backtestEngine.Run(context.Background(), engine_types.LifecycleCallbacks{})

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsgContains)
				assert.True(t, errors.HasCode(err, errors.ErrCodeVersionMismatch))
				assert.Empty(t, alg.slices, "algorithm must not run")
			} else {
				require.NoError(t, err)
				assert.Len(t, alg.slices, 2)
			}
		})
	}
}
