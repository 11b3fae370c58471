package types

type IndicatorType string

const (
	IndicatorTypeRSI        IndicatorType = "rsi"
	IndicatorTypeStochastic IndicatorType = "stochastic"
	IndicatorTypeSMA        IndicatorType = "sma"
	IndicatorTypeWilders    IndicatorType = "wilders"
	IndicatorTypeMaximum    IndicatorType = "maximum"
	IndicatorTypeMinimum    IndicatorType = "minimum"
)
