package models

// Setup is the InputDataSetupInput record built from the setup sheet.
// Fields whose parameter row is absent from the sheet stay nil and are
// omitted from the payload rather than defaulted.
type Setup struct {
	UseMarketBids         *bool    `json:"useMarketBids,omitempty"`
	UseReserves           *bool    `json:"useReserves,omitempty"`
	UseReserveRealisation *bool    `json:"useReserveRealisation,omitempty"`
	UseNodeDummyVariables *bool    `json:"useNodeDummyVariables,omitempty"`
	UseRampDummyVariables *bool    `json:"useRampDummyVariables,omitempty"`
	CommonTimesteps       *int     `json:"commonTimesteps,omitempty"`
	CommonScenarioName    *string  `json:"commonScenarioName,omitempty"`
	NodeDummyVariableCost *float64 `json:"nodeDummyVariableCost,omitempty"`
	RampDummyVariableCost *float64 `json:"rampDummyVariableCost,omitempty"`
}
