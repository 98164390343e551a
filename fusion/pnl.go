package fusion

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ninjahangover/signalcartel-alien/types"
)

// Default cost-model constants, in dollars: ~$60 positions at ~$0.25
// commission per round trip. Both are plain parameters, not market facts.
const (
	DefaultPositionSizeUSD = 60.0
	DefaultCommissionUSD   = 0.25
)

// Environment variables that override the cost model in the binaries.
const (
	EnvPositionSize = "POSITION_SIZE_USD"
	EnvCommission   = "COMMISSION_USD"
)

// CostModel holds the dollar constants of the simulated P&L calculation.
type CostModel struct {
	PositionSize decimal.Decimal // dollars at risk per trade
	Commission   decimal.Decimal // dollars per round trip
}

// DefaultCostModel returns the cost model with the standard constants.
func DefaultCostModel() CostModel {
	return CostModel{
		PositionSize: decimal.NewFromFloat(DefaultPositionSizeUSD),
		Commission:   decimal.NewFromFloat(DefaultCommissionUSD),
	}
}

// CostModelFromEnv returns the default cost model with any values
// present in the environment applied on top.
func CostModelFromEnv() CostModel {
	model := DefaultCostModel()
	if v, err := strconv.ParseFloat(os.Getenv(EnvPositionSize), 64); err == nil && v > 0 {
		model.PositionSize = decimal.NewFromFloat(v)
	}
	if v, err := strconv.ParseFloat(os.Getenv(EnvCommission), 64); err == nil && v >= 0 {
		model.Commission = decimal.NewFromFloat(v)
	}
	return model
}

// TradePnL returns the simulated profit of one trade. A correct direction
// call earns the realized move on the position; a wrong call loses it.
// Commission is paid either way.
func (c CostModel) TradePnL(predicted int, actual types.Outcome) decimal.Decimal {
	gross := decimal.NewFromFloat(actual.Magnitude).Mul(c.PositionSize)
	if predicted != actual.Direction {
		gross = gross.Neg()
	}
	return gross.Sub(c.Commission)
}
