// Package gridin converts an energy-system model workbook into GraphQL
// mutation envelopes: persisted to disk, and optionally dispatched to the
// model service in dependency order.
package gridin

import (
	"time"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/config"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/dispatch"
)

// Options configures one conversion run.
type Options struct {
	// OutputDir is the root under which csv/ and graphql/ are created.
	OutputDir string
	// Endpoint is the model service POST target.
	Endpoint string
	// Headers are sent with every submission request.
	Headers map[string]string
	// Timeout bounds each submission request.
	Timeout time.Duration
	// Dispatch controls whether the dispatch phase executes at all; when
	// false only persistence to disk happens.
	Dispatch bool
}

// DefaultOptions returns run options with the default request timeout and
// dispatch disabled.
func DefaultOptions() Options {
	return Options{Timeout: dispatch.DefaultTimeout}
}

// OptionsFromConfig maps a loaded configuration onto run options.
func OptionsFromConfig(cfg *config.Config, outputDir string) Options {
	return Options{
		OutputDir: outputDir,
		Endpoint:  cfg.Endpoint,
		Headers:   cfg.Headers,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Dispatch:  cfg.Dispatch,
	}
}
