// Package commission_fee implements the broker fee models used when filling orders.
package commission_fee

import (
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
	"github.com/shopspring/decimal"
)

// CommissionFee computes the fee of a fill.
type CommissionFee interface {
	// Calculate returns the fee in USD for a fill of quantity shares at price.
	Calculate(quantity decimal.Decimal, price decimal.Decimal) decimal.Decimal
}

type Broker string

const (
	BrokerInteractiveBroker Broker = "interactive_broker"
	BrokerZero              Broker = "zero_commission"
)

// AllBrokers is the enum used by the config schema.
var AllBrokers = []any{
	BrokerInteractiveBroker,
	BrokerZero,
}

// GetCommissionFeeHandler returns the fee model of broker.
func GetCommissionFeeHandler(broker Broker) (CommissionFee, error) {
	switch broker {
	case BrokerInteractiveBroker:
		return NewInteractiveBrokerCommissionFee(), nil
	case BrokerZero:
		return NewZeroCommissionFee(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unknown broker: %s", broker)
	}
}
