// Package models defines the typed input records submitted to the model service.
package models

// Value represents one decoded time-series descriptor. A descriptor is
// either a single constant (every sample in the source column was equal)
// or an ordered series, optionally scoped to a single scenario.
type Value struct {
	// Scenario is the scenario this value applies to. Nil means the value
	// applies across every scenario ("ALL" in sheet headers).
	Scenario *string `json:"scenario"`
	// Constant holds the collapsed value when all samples are identical.
	Constant *float64 `json:"constant,omitempty"`
	// Series holds the ordered samples when they differ. Never empty.
	Series []float64 `json:"series,omitempty"`
}

// NewConstant builds a constant descriptor for the given scenario.
func NewConstant(scenario *string, v float64) Value {
	return Value{Scenario: scenario, Constant: &v}
}

// NewSeries builds a series descriptor for the given scenario.
func NewSeries(scenario *string, samples []float64) Value {
	return Value{Scenario: scenario, Series: samples}
}
