package parser

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topologyHeader = "process,source_sink,node,capacity,vom_cost,ramp_up,ramp_down,initial_load,initial_flow\n"

func TestParseTopologiesSink(t *testing.T) {
	path := writeSheet(t, "process_topology.csv",
		topologyHeader+"p1,sink,n1,10,,,,,\n")

	topologies := ParseTopologies(path, quietLogger())
	require.Len(t, topologies, 1)

	topo := topologies[0]
	assert.Equal(t, "p1", topo.ProcessName)
	assert.Nil(t, topo.SourceNodeName)
	require.NotNil(t, topo.SinkNodeName)
	assert.Equal(t, "n1", *topo.SinkNodeName)
	assert.Equal(t, 10.0, topo.Topology.Capacity)
	assert.Equal(t, 0.0, topo.Topology.VomCost)
	assert.Empty(t, topo.Topology.CapTs)
}

func TestParseTopologiesSourceVariants(t *testing.T) {
	path := writeSheet(t, "process_topology.csv",
		topologyHeader+
			"p1,source,n1,1,,,,,\n"+
			"p1,src,n2,1,,,,,\n"+
			"p1,IN,n3,1,,,,,\n")

	topologies := ParseTopologies(path, quietLogger())
	require.Len(t, topologies, 3)
	for _, topo := range topologies {
		assert.NotNil(t, topo.SourceNodeName)
		assert.Nil(t, topo.SinkNodeName)
	}
}

func TestParseTopologiesUnknownRoleDropped(t *testing.T) {
	log, hook := test.NewNullLogger()
	path := writeSheet(t, "process_topology.csv",
		topologyHeader+
			"p1,sideways,n1,1,,,,,\n"+
			"p1,sink,n2,1,,,,,\n")

	topologies := ParseTopologies(path, log)
	require.Len(t, topologies, 1)
	assert.Equal(t, "n2", *topologies[0].SinkNodeName)

	// the dropped row warns rather than failing the run
	found := false
	for _, entry := range hook.Entries {
		if entry.Data["source_sink"] == "sideways" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning for the unknown role")
}

func TestParseTopologiesBlankNamesDropped(t *testing.T) {
	path := writeSheet(t, "process_topology.csv",
		topologyHeader+
			",sink,n1,1,,,,,\n"+
			"p1,sink,,1,,,,,\n")

	assert.Empty(t, ParseTopologies(path, quietLogger()))
}

func TestParseTopologiesOptional(t *testing.T) {
	// missing file
	assert.Empty(t, ParseTopologies(filepath.Join(t.TempDir(), "nope.csv"), quietLogger()))

	// missing column degrades instead of aborting
	path := writeSheet(t, "process_topology.csv", "process,node\np1,n1\n")
	assert.Empty(t, ParseTopologies(path, quietLogger()))
}
