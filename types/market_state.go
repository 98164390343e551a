package types

// MarketState represents the simulated market conditions strategies react to
type MarketState struct {
	PatternStrength float64 `json:"pattern_strength"` // [0,1]
	BidAskPressure  float64 `json:"bid_ask_pressure"` // [0,1]
	TransitionProb  float64 `json:"transition_prob"`  // [0,1]
	RiskReward      float64 `json:"risk_reward"`      // typically 0.5-3.0
	Momentum        float64 `json:"momentum"`         // [0,1]
	Volatility      float64 `json:"volatility"`       // [0,1]
	Volume          float64 `json:"volume"`           // shares/contracts traded
}
