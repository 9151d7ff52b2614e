package models

// Risk is one (parameter, value) pair from the risk sheet.
type Risk struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
}

// Scenario is one named scenario with its probability weight.
type Scenario struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
