package gridin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/dispatch"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/parser"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/payload"
)

// Per-sheet CSV file names produced by ConvertWorkbook and consumed by
// the parsers.
const (
	sheetSetup        = "setup.csv"
	sheetNodes        = "nodes.csv"
	sheetProcesses    = "processes.csv"
	sheetTopology     = "process_topology.csv"
	sheetGroups       = "groups.csv"
	sheetMarkets      = "markets.csv"
	sheetScenarios    = "scenarios.csv"
	sheetRisk         = "risk.csv"
	sheetNodePrice    = "price.csv"
	sheetInflow       = "inflow.csv"
	sheetCf           = "cf.csv"
	sheetMarketPrices = "market_prices.csv"
)

// Model holds every parsed and enriched entity of one run.
type Model struct {
	Setup      *models.Setup
	Scenarios  []models.Scenario
	Nodes      []models.Node
	NodeStates []models.NodeStateInput
	Processes  []models.Process
	Groups     models.Groups
	Topologies []models.ProcessTopology
	Markets    []models.Market
	Risks      []models.Risk
}

// Result is the outcome of one conversion run.
type Result struct {
	Model   *Model
	Batches []dispatch.Batch
	// Dispatch is nil when the dispatch phase was disabled.
	Dispatch *dispatch.Summary
}

// Convert runs the full pipeline: workbook to CSV, sheet parsing,
// time-series enrichment, envelope assembly, persistence, and (if
// enabled) dependency-ordered dispatch. Fatal conditions abort the run;
// everything else degrades with a warning and the run produces a
// best-effort output set.
func Convert(ctx context.Context, workbookPath string, opts Options, log *logrus.Logger) (*Result, error) {
	csvDir := filepath.Join(opts.OutputDir, "csv")
	gqlDir := filepath.Join(opts.OutputDir, "graphql")
	for _, dir := range []string{csvDir, gqlDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	if err := ConvertWorkbook(workbookPath, csvDir, log); err != nil {
		return nil, &StageError{Stage: "workbook", Err: err}
	}

	model, err := parseModel(csvDir, log)
	if err != nil {
		return nil, err
	}

	if err := enrichModel(model, csvDir, log); err != nil {
		return nil, err
	}

	batches := buildBatches(model)

	writer, err := dispatch.NewWriter(gqlDir)
	if err != nil {
		return nil, &StageError{Stage: "persist", Err: err}
	}
	if err := persistBatches(writer, batches); err != nil {
		return nil, &StageError{Stage: "persist", Err: err}
	}

	result := &Result{Model: model, Batches: batches}

	if opts.Dispatch {
		client := dispatch.NewClient(opts.Endpoint, opts.Headers, opts.Timeout)
		summary := dispatch.NewDispatcher(client, log).Run(ctx, batches)
		result.Dispatch = &summary
	} else {
		log.Info("dispatch disabled, envelopes persisted only")
	}

	return result, nil
}

// parseModel reads every sheet into typed records. Setup, nodes and
// processes are mandatory; the rest degrade to empty results.
func parseModel(csvDir string, log *logrus.Logger) (*Model, error) {
	in := func(name string) string { return filepath.Join(csvDir, name) }

	setup, err := parser.ParseSetup(in(sheetSetup))
	if err != nil {
		return nil, &StageError{Stage: "setup", Err: err}
	}

	nodes, err := parser.ParseNodes(in(sheetNodes))
	if err != nil {
		return nil, &StageError{Stage: "nodes", Err: err}
	}

	nodeStates, err := parser.ParseNodeStates(in(sheetNodes))
	if err != nil {
		return nil, &StageError{Stage: "node states", Err: err}
	}

	processes, err := parser.ParseProcesses(in(sheetProcesses))
	if err != nil {
		return nil, &StageError{Stage: "processes", Err: err}
	}

	markets, err := parser.ParseMarkets(in(sheetMarkets), log)
	if err != nil {
		return nil, &StageError{Stage: "markets", Err: err}
	}

	return &Model{
		Setup:      setup,
		Scenarios:  parser.ParseScenarios(in(sheetScenarios), log),
		Nodes:      nodes,
		NodeStates: nodeStates,
		Processes:  processes,
		Groups:     parser.ParseGroups(in(sheetGroups), log),
		Topologies: parser.ParseTopologies(in(sheetTopology), log),
		Markets:    markets,
		Risks:      parser.ParseRisk(in(sheetRisk), log),
	}, nil
}

// enrichModel joins decoded time-series maps onto the base entities. Each
// series field is sourced from exactly one sheet; a missing sheet leaves
// the field empty.
func enrichModel(model *Model, csvDir string, log *logrus.Logger) error {
	costs, err := parser.DecodeWideSeries(filepath.Join(csvDir, sheetNodePrice), log)
	if err != nil {
		return &StageError{Stage: "node prices", Err: err}
	}
	parser.AttachNodeCost(model.Nodes, costs)

	inflows, err := parser.DecodeWideSeries(filepath.Join(csvDir, sheetInflow), log)
	if err != nil {
		return &StageError{Stage: "inflow", Err: err}
	}
	parser.AttachNodeInflow(model.Nodes, inflows)

	cfs, err := parser.DecodeWideSeries(filepath.Join(csvDir, sheetCf), log)
	if err != nil {
		return &StageError{Stage: "cf", Err: err}
	}
	parser.AttachProcessCf(model.Processes, cfs)

	prices, err := parser.DecodeWideSeries(filepath.Join(csvDir, sheetMarketPrices), log)
	if err != nil {
		return &StageError{Stage: "market prices", Err: err}
	}
	parser.AttachMarketPrice(model.Markets, prices)

	return nil
}

// buildBatches assembles envelopes into the required submission order:
// setup, scenarios, nodes, node states, processes, group creation, group
// memberships, topologies, markets, risks. Later stages reference earlier
// stages by name.
func buildBatches(model *Model) []dispatch.Batch {
	var batches []dispatch.Batch
	add := func(stage string, items []dispatch.Item) {
		batches = append(batches, dispatch.Batch{Stage: stage, Items: items})
	}

	add("setup", []dispatch.Item{
		{Name: "inputdatasetup", Envelope: payload.ForSetup(model.Setup)},
	})

	items := make([]dispatch.Item, 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		items = append(items, dispatch.Item{Name: s.Name, Envelope: payload.ForScenario(s)})
	}
	add("scenarios", items)

	items = make([]dispatch.Item, 0, len(model.Nodes))
	for _, n := range model.Nodes {
		items = append(items, dispatch.Item{Name: n.Name, Envelope: payload.ForNode(n)})
	}
	add("nodes", items)

	items = make([]dispatch.Item, 0, len(model.NodeStates))
	for _, s := range model.NodeStates {
		items = append(items, dispatch.Item{Name: s.NodeName, Envelope: payload.ForNodeState(s)})
	}
	add("node_states", items)

	items = make([]dispatch.Item, 0, len(model.Processes))
	for _, p := range model.Processes {
		items = append(items, dispatch.Item{Name: p.Name, Envelope: payload.ForProcess(p)})
	}
	add("processes", items)

	items = make([]dispatch.Item, 0, len(model.Groups.NodeGroups))
	for _, g := range model.Groups.NodeGroups {
		items = append(items, dispatch.Item{Name: g, Envelope: payload.ForNodeGroup(g)})
	}
	add("node_groups", items)

	items = make([]dispatch.Item, 0, len(model.Groups.ProcessGroups))
	for _, g := range model.Groups.ProcessGroups {
		items = append(items, dispatch.Item{Name: g, Envelope: payload.ForProcessGroup(g)})
	}
	add("process_groups", items)

	items = make([]dispatch.Item, 0, len(model.Groups.NodeMemberships))
	for _, m := range model.Groups.NodeMemberships {
		items = append(items, dispatch.Item{
			Name:     m.NodeName + "_" + m.GroupName,
			Envelope: payload.ForNodeMembership(m),
		})
	}
	add("node_memberships", items)

	items = make([]dispatch.Item, 0, len(model.Groups.ProcessMemberships))
	for _, m := range model.Groups.ProcessMemberships {
		items = append(items, dispatch.Item{
			Name:     m.ProcessName + "_" + m.GroupName,
			Envelope: payload.ForProcessMembership(m),
		})
	}
	add("process_memberships", items)

	items = make([]dispatch.Item, 0, len(model.Topologies))
	for _, t := range model.Topologies {
		node := ""
		if t.SourceNodeName != nil {
			node = *t.SourceNodeName
		} else if t.SinkNodeName != nil {
			node = *t.SinkNodeName
		}
		items = append(items, dispatch.Item{
			Name:     t.ProcessName + "_" + node,
			Envelope: payload.ForTopology(t),
		})
	}
	add("topologies", items)

	items = make([]dispatch.Item, 0, len(model.Markets))
	for _, m := range model.Markets {
		items = append(items, dispatch.Item{Name: m.Name, Envelope: payload.ForMarket(m)})
	}
	add("markets", items)

	items = make([]dispatch.Item, 0, len(model.Risks))
	for _, r := range model.Risks {
		items = append(items, dispatch.Item{Name: r.Parameter, Envelope: payload.ForRisk(r)})
	}
	add("risks", items)

	return batches
}

// stagePrefix maps a stage name onto the per-item file prefix.
var stagePrefix = map[string]string{
	"scenarios":           "scenario",
	"nodes":               "node",
	"node_states":         "node_state",
	"processes":           "process",
	"node_groups":         "node_group",
	"process_groups":      "process_group",
	"node_memberships":    "node_membership",
	"process_memberships": "process_membership",
	"topologies":          "topology",
	"markets":             "market",
	"risks":               "risk",
}

// persistBatches writes every envelope to disk: one file per item plus a
// combined _all file per entity type. The singleton setup envelope gets a
// single fixed-name file.
func persistBatches(writer *dispatch.Writer, batches []dispatch.Batch) error {
	for _, batch := range batches {
		if batch.Stage == "setup" {
			for _, item := range batch.Items {
				if err := writer.WriteSingle(item.Name, item.Envelope); err != nil {
					return err
				}
			}
			continue
		}

		envelopes := make([]payload.Envelope, 0, len(batch.Items))
		for _, item := range batch.Items {
			if err := writer.WriteItem(stagePrefix[batch.Stage], item.Name, item.Envelope); err != nil {
				return err
			}
			envelopes = append(envelopes, item.Envelope)
		}
		if len(envelopes) > 0 {
			if err := writer.WriteBatch(batch.Stage, envelopes); err != nil {
				return err
			}
		}
	}
	return nil
}
