package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

type PurchaseType string

type OrderType string

type OrderStatus string

const (
	OrderStatusFilled   OrderStatus = "FILLED"
	OrderStatusRejected OrderStatus = "REJECTED"
)

const (
	PurchaseTypeBuy  PurchaseType = "BUY"
	PurchaseTypeSell PurchaseType = "SELL"
)

const (
	OrderTypeMarket OrderType = "MARKET"
)

const (
	OrderReasonAlgorithm             string = "algorithm"
	OrderReasonLiquidate             string = "liquidate"
	OrderReasonInsufficientBuyPower  string = "insufficient_buying_power"
	OrderReasonInsufficientSellPower string = "insufficient_selling_power"
	OrderReasonInvalidQuantity       string = "invalid_quantity"
	OrderReasonNoPrice               string = "no_price"
	OrderReasonWarmingUp             string = "warming_up"
)

type Reason struct {
	Reason  string `yaml:"reason" json:"reason" csv:"reason" validate:"required"`
	Message string `yaml:"message" json:"message" csv:"message"`
}

// Order is a market order as seen by the algorithm after it was processed.
type Order struct {
	OrderID       string       `yaml:"order_id" json:"order_id" csv:"order_id" validate:"required,uuid"`
	Symbol        string       `yaml:"symbol" json:"symbol" csv:"symbol" validate:"required"`
	Side          PurchaseType `yaml:"side" json:"side" csv:"side" validate:"required,oneof=BUY SELL"`
	OrderType     OrderType    `yaml:"order_type" json:"order_type" csv:"order_type" validate:"required,oneof=MARKET"`
	Quantity      float64      `yaml:"quantity" json:"quantity" csv:"quantity" validate:"required,gt=0"`
	Price         float64      `yaml:"price" json:"price" csv:"price" validate:"gte=0"`
	Timestamp     time.Time    `yaml:"timestamp" json:"timestamp" csv:"timestamp" validate:"required"`
	Status        OrderStatus  `yaml:"status" json:"status" csv:"status" validate:"required,oneof=FILLED REJECTED"`
	Reason        Reason       `yaml:"reason" json:"reason" csv:"reason" validate:"required"`
	AlgorithmName string       `yaml:"algorithm_name" json:"algorithm_name" csv:"algorithm_name" validate:"required"`
	Fee           float64      `yaml:"fee" json:"fee" csv:"fee" validate:"gte=0"`
	// RealizedPnL is set on sell fills: proceeds minus the average entry cost minus fees.
	RealizedPnL float64 `yaml:"realized_pnl" json:"realized_pnl" csv:"realized_pnl"`
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid order", err)
	}

	return nil
}

// IsFilled reports whether the order was executed.
func (o *Order) IsFilled() bool {
	return o.Status == OrderStatusFilled
}
