package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-algorithm/internal/types"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestDefaultRegistry() {
	registry := NewDefaultIndicatorRegistry()

	suite.Equal([]types.IndicatorType{
		types.IndicatorTypeMaximum,
		types.IndicatorTypeMinimum,
		types.IndicatorTypeRSI,
		types.IndicatorTypeSMA,
		types.IndicatorTypeStochastic,
		types.IndicatorTypeWilders,
	}, registry.ListIndicators())
}

func (suite *RegistryTestSuite) TestCreateRSI() {
	registry := NewDefaultIndicatorRegistry()

	ind, err := registry.Create(types.IndicatorTypeRSI, "First", 15, "wilders")
	suite.Require().NoError(err)
	suite.Equal("First", ind.Name())

	rsi, ok := ind.(*RelativeStrengthIndex)
	suite.Require().True(ok)
	suite.Equal(15, rsi.period)
	suite.Equal(MovingAverageTypeWilders, rsi.MovingAverageType())

	ind, err = registry.Create(types.IndicatorTypeRSI, "", 14, MovingAverageTypeSimple)
	suite.Require().NoError(err)
	suite.Equal(MovingAverageTypeSimple, ind.(*RelativeStrengthIndex).MovingAverageType())
}

func (suite *RegistryTestSuite) TestCreateInvalidParams() {
	registry := NewDefaultIndicatorRegistry()

	_, err := registry.Create(types.IndicatorTypeRSI, "")
	suite.Error(err)
	suite.Contains(err.Error(), "missing period")

	_, err = registry.Create(types.IndicatorTypeRSI, "", "14")
	suite.Error(err)
	suite.Contains(err.Error(), "invalid type for period")

	_, err = registry.Create(types.IndicatorTypeRSI, "", 14, 1.5)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = registry.Create(types.IndicatorTypeStochastic, "", 14, 3)
	suite.Error(err)
}

func (suite *RegistryTestSuite) TestCreateOthers() {
	registry := NewDefaultIndicatorRegistry()

	sto, err := registry.Create(types.IndicatorTypeStochastic, "FIRST", 14, 3, 3)
	suite.NoError(err)
	suite.IsType(&Stochastic{}, sto)

	sma, err := registry.Create(types.IndicatorTypeSMA, "", 5)
	suite.NoError(err)
	suite.IsType(&SimpleMovingAverage{}, sma)

	wilders, err := registry.Create(types.IndicatorTypeWilders, "", 5)
	suite.NoError(err)
	suite.IsType(&WildersMovingAverage{}, wilders)

	maximum, err := registry.Create(types.IndicatorTypeMaximum, "", 5)
	suite.NoError(err)
	suite.IsType(&Maximum{}, maximum)

	minimum, err := registry.Create(types.IndicatorTypeMinimum, "", 5)
	suite.NoError(err)
	suite.IsType(&Minimum{}, minimum)
}

func (suite *RegistryTestSuite) TestUnknownIndicator() {
	registry := NewIndicatorRegistry()

	_, err := registry.Create(types.IndicatorTypeRSI, "")
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
	suite.Error(registry.RemoveFactory(types.IndicatorTypeRSI))
}

func (suite *RegistryTestSuite) TestRegisterDuplicateAndRemove() {
	registry := NewIndicatorRegistry()

	suite.NoError(registry.RegisterFactory(types.IndicatorTypeRSI, rsiFactory))
	err := registry.RegisterFactory(types.IndicatorTypeRSI, rsiFactory)
	suite.Error(err)
	suite.Contains(err.Error(), "already registered")

	suite.NoError(registry.RemoveFactory(types.IndicatorTypeRSI))
	suite.Empty(registry.ListIndicators())
}
