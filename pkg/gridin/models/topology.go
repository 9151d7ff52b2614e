package models

// Topology carries the flow parameters of one process/node link.
type Topology struct {
	Capacity    float64 `json:"capacity"`
	VomCost     float64 `json:"vomCost"`
	RampUp      float64 `json:"rampUp"`
	RampDown    float64 `json:"rampDown"`
	InitialLoad float64 `json:"initialLoad"`
	InitialFlow float64 `json:"initialFlow"`
	CapTs       []Value `json:"capTs"`
}

// ProcessTopology links a process to a node as either source or sink.
// Exactly one of SourceNodeName and SinkNodeName is set.
type ProcessTopology struct {
	ProcessName    string   `json:"processName"`
	SourceNodeName *string  `json:"sourceNodeName"`
	SinkNodeName   *string  `json:"sinkNodeName"`
	Topology       Topology `json:"topology"`
}
