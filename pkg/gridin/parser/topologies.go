package parser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

var topologyColumns = []string{
	"process",
	"source_sink",
	"node",
	"capacity",
	"vom_cost",
	"ramp_up",
	"ramp_down",
	"initial_load",
	"initial_flow",
}

// ParseTopologies reads the process topology sheet into createTopology
// inputs. The sheet is optional: a missing file, empty sheet or missing
// column degrades to an empty result with a warning. Rows with a blank
// process or node name, or an unrecognized source_sink role, are dropped.
func ParseTopologies(path string, log *logrus.Logger) []models.ProcessTopology {
	t := readOptional(path, topologyColumns, log)
	if t == nil {
		return []models.ProcessTopology{}
	}

	var topologies []models.ProcessTopology
	for _, row := range t.Rows {
		processName := strings.TrimSpace(row["process"])
		nodeName := strings.TrimSpace(row["node"])
		if processName == "" || nodeName == "" {
			continue
		}

		source, sink, ok := splitSourceSink(row["source_sink"], nodeName, log)
		if !ok {
			continue
		}

		topologies = append(topologies, models.ProcessTopology{
			ProcessName:    processName,
			SourceNodeName: source,
			SinkNodeName:   sink,
			Topology: models.Topology{
				Capacity:    tabular.Float(row["capacity"], 0.0),
				VomCost:     tabular.Float(row["vom_cost"], 0.0),
				RampUp:      tabular.Float(row["ramp_up"], 0.0),
				RampDown:    tabular.Float(row["ramp_down"], 0.0),
				InitialLoad: tabular.Float(row["initial_load"], 0.0),
				InitialFlow: tabular.Float(row["initial_flow"], 0.0),
				CapTs:       []models.Value{},
			},
		})
	}
	return topologies
}

// splitSourceSink decides whether the node is the source or the sink of
// the link. Any role outside the accepted variants drops the row with a
// warning.
func splitSourceSink(roleRaw, nodeName string, log *logrus.Logger) (source, sink *string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(roleRaw)) {
	case "source", "src", "s", "in", "input":
		return &nodeName, nil, true
	case "sink", "snk", "d", "out", "output":
		return nil, &nodeName, true
	}
	log.WithFields(logrus.Fields{
		"sheet":       "process_topology.csv",
		"source_sink": roleRaw,
		"node":        nodeName,
	}).Warn("unknown source_sink value, row skipped")
	return nil, nil, false
}
