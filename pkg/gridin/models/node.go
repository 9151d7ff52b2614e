package models

// Node is the NewNode input record built from one row of the nodes sheet.
// Cost and Inflow start empty and are filled by enrichment from the price
// and inflow sheets.
type Node struct {
	Name        string  `json:"name"`
	IsCommodity bool    `json:"isCommodity"`
	IsMarket    bool    `json:"isMarket"`
	IsRes       bool    `json:"isRes"`
	Cost        []Value `json:"cost"`
	Inflow      []Value `json:"inflow"`
}

// NodeState is the NewState input for a storage-capable node.
type NodeState struct {
	InMax                 float64 `json:"inMax"`
	OutMax                float64 `json:"outMax"`
	StateLossProportional float64 `json:"stateLossProportional"`
	StateMin              float64 `json:"stateMin"`
	StateMax              float64 `json:"stateMax"`
	InitialState          float64 `json:"initialState"`
	IsScenarioIndependent bool    `json:"isScenarioIndependent"`
	IsTemp                bool    `json:"isTemp"`
	TEConversion          float64 `json:"tEConversion"`
	ResidualValue         float64 `json:"residualValue"`
}

// DefaultNodeState returns the state defaults applied before any sheet
// columns are read.
func DefaultNodeState() NodeState {
	return NodeState{
		IsScenarioIndependent: true,
		TEConversion:          1.0,
	}
}

// NodeStateInput pairs a state with the node it belongs to.
type NodeStateInput struct {
	NodeName string    `json:"nodeName"`
	State    NodeState `json:"state"`
}
