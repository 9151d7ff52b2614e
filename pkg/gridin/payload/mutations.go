package payload

import (
	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

// Mutation texts for the model service. Every operation returns the
// service-side validation errors so the dispatcher can detect item
// failures in a 200 response.

const createSetupMutation = `
mutation CreateInputDataSetup($setup: InputDataSetupInput!) {
  createInputDataSetup(setupUpdate: $setup) {
    errors {
      field
      message
    }
  }
}
`

const createScenarioMutation = `
mutation CreateScenario($scenario: NewScenario!) {
  createScenario(scenario: $scenario) {
    errors {
      field
      message
    }
  }
}
`

const createNodeMutation = `
mutation CreateNode($node: NewNode!) {
  createNode(node: $node) {
    errors {
      field
      message
    }
  }
}
`

const setNodeStateMutation = `
mutation SetNodeState($nodeName: String!, $state: NewState!) {
  setNodeState(nodeName: $nodeName, state: $state) {
    errors {
      field
      message
    }
  }
}
`

const createProcessMutation = `
mutation CreateProcess($process: NewProcess!) {
  createProcess(process: $process) {
    errors {
      field
      message
    }
  }
}
`

const createNodeGroupMutation = `
mutation CreateNodeGroup($name: String!) {
  createNodeGroup(name: $name) {
    errors {
      field
      message
    }
  }
}
`

const createProcessGroupMutation = `
mutation CreateProcessGroup($name: String!) {
  createProcessGroup(name: $name) {
    errors {
      field
      message
    }
  }
}
`

const addNodeToGroupMutation = `
mutation AddNodeToGroup($nodeName: String!, $groupName: String!) {
  addNodeToGroup(nodeName: $nodeName, groupName: $groupName) {
    errors {
      field
      message
    }
  }
}
`

const addProcessToGroupMutation = `
mutation AddProcessToGroup($processName: String!, $groupName: String!) {
  addProcessToGroup(processName: $processName, groupName: $groupName) {
    errors {
      field
      message
    }
  }
}
`

const createTopologyMutation = `
mutation CreateTopology($processName: String!, $sourceNodeName: String, $sinkNodeName: String, $topology: NewTopology!) {
  createTopology(processName: $processName, sourceNodeName: $sourceNodeName, sinkNodeName: $sinkNodeName, topology: $topology) {
    errors {
      field
      message
    }
  }
}
`

const createMarketMutation = `
mutation CreateMarket($market: NewMarket!) {
  createMarket(market: $market) {
    errors {
      field
      message
    }
  }
}
`

const createRiskMutation = `
mutation CreateRisk($risk: NewRisk!) {
  createRisk(risk: $risk) {
    errors {
      field
      message
    }
  }
}
`

// ForSetup wraps the global setup record.
func ForSetup(setup *models.Setup) Envelope {
	return New(createSetupMutation, "setup", setup)
}

// ForScenario wraps one scenario record.
func ForScenario(s models.Scenario) Envelope {
	return New(createScenarioMutation, "scenario", s)
}

// ForNode wraps one node record.
func ForNode(n models.Node) Envelope {
	return New(createNodeMutation, "node", n)
}

// ForNodeState wraps one node state, binding both the node name and the
// state input.
func ForNodeState(s models.NodeStateInput) Envelope {
	return Envelope{
		Query: setNodeStateMutation,
		Variables: map[string]any{
			"nodeName": s.NodeName,
			"state":    s.State,
		},
	}
}

// ForProcess wraps one process record.
func ForProcess(p models.Process) Envelope {
	return New(createProcessMutation, "process", p)
}

// ForNodeGroup wraps one node group creation.
func ForNodeGroup(name string) Envelope {
	return New(createNodeGroupMutation, "name", name)
}

// ForProcessGroup wraps one process group creation.
func ForProcessGroup(name string) Envelope {
	return New(createProcessGroupMutation, "name", name)
}

// ForNodeMembership wraps one node-to-group assignment.
func ForNodeMembership(m models.NodeMembership) Envelope {
	return Envelope{
		Query: addNodeToGroupMutation,
		Variables: map[string]any{
			"nodeName":  m.NodeName,
			"groupName": m.GroupName,
		},
	}
}

// ForProcessMembership wraps one process-to-group assignment.
func ForProcessMembership(m models.ProcessMembership) Envelope {
	return Envelope{
		Query: addProcessToGroupMutation,
		Variables: map[string]any{
			"processName": m.ProcessName,
			"groupName":   m.GroupName,
		},
	}
}

// ForTopology wraps one topology link. Source and sink names pass through
// as-is; exactly one of them is set.
func ForTopology(t models.ProcessTopology) Envelope {
	return Envelope{
		Query: createTopologyMutation,
		Variables: map[string]any{
			"processName":    t.ProcessName,
			"sourceNodeName": t.SourceNodeName,
			"sinkNodeName":   t.SinkNodeName,
			"topology":       t.Topology,
		},
	}
}

// ForMarket wraps one market record.
func ForMarket(m models.Market) Envelope {
	return New(createMarketMutation, "market", m)
}

// ForRisk wraps one risk record.
func ForRisk(r models.Risk) Envelope {
	return New(createRiskMutation, "risk", r)
}
