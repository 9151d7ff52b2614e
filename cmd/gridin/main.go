// Package main provides the CLI entry point for gridin-go.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/esmodel-tools/gridin-go/pkg/gridin"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/config"
)

var (
	outputDir  string
	configPath string
	endpoint   string
	doDispatch bool
	timeoutSec int
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridin [model.xlsx]",
		Short: "Convert an energy-system model workbook into model service mutations",
		Long: `gridin-go converts a multi-sheet energy-system model spreadsheet (nodes,
processes, topologies, markets, groups, risk, scenarios, setup and time
series) into GraphQL mutation envelopes, persists them to disk, and can
submit them to the model service in dependency order.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (default: alongside the workbook)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "Model service endpoint URL")
	rootCmd.Flags().BoolVar(&doDispatch, "dispatch", false, "Submit envelopes to the model service")
	rootCmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Request timeout in seconds")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	workbookPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	if _, err := os.Stat(workbookPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", workbookPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override config file values.
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if cmd.Flags().Changed("dispatch") {
		cfg.Dispatch = doDispatch
	}
	if timeoutSec > 0 {
		cfg.TimeoutSeconds = timeoutSec
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)

	if outputDir == "" {
		outputDir = filepath.Join(filepath.Dir(workbookPath), "output")
	}

	opts := gridin.OptionsFromConfig(cfg, outputDir)

	result, err := gridin.Convert(context.Background(), workbookPath, opts, log)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"nodes":      len(result.Model.Nodes),
		"processes":  len(result.Model.Processes),
		"markets":    len(result.Model.Markets),
		"topologies": len(result.Model.Topologies),
		"output":     outputDir,
	}).Info("conversion complete")

	if result.Dispatch != nil && result.Dispatch.Failed > 0 {
		log.WithFields(logrus.Fields{
			"submitted": result.Dispatch.Submitted,
			"failed":    result.Dispatch.Failed,
		}).Warn("some items were rejected by the model service")
	}
	return nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
