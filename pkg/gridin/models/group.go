package models

// NodeMembership assigns a node to a node group.
type NodeMembership struct {
	NodeName  string `json:"nodeName"`
	GroupName string `json:"groupName"`
}

// ProcessMembership assigns a process to a process group.
type ProcessMembership struct {
	ProcessName string `json:"processName"`
	GroupName   string `json:"groupName"`
}

// Groups holds the parsed groups sheet: deduplicated, sorted group name
// sets plus memberships in sheet row order.
type Groups struct {
	NodeGroups         []string            `json:"nodeGroups"`
	ProcessGroups      []string            `json:"processGroups"`
	NodeMemberships    []NodeMembership    `json:"nodeMemberships"`
	ProcessMemberships []ProcessMembership `json:"processMemberships"`
}
