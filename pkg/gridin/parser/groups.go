package parser

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

// ParseGroups reads the groups sheet into deduplicated, sorted group name
// sets plus memberships in row order. The sheet is optional; rows with a
// blank entity or group name, or an unknown group_type, are dropped.
func ParseGroups(path string, log *logrus.Logger) models.Groups {
	groups := models.Groups{
		NodeGroups:         []string{},
		ProcessGroups:      []string{},
		NodeMemberships:    []models.NodeMembership{},
		ProcessMemberships: []models.ProcessMembership{},
	}

	t := readOptional(path, []string{"group_type", "entity", "group"}, log)
	if t == nil {
		return groups
	}

	nodeGroups := map[string]struct{}{}
	processGroups := map[string]struct{}{}

	for _, row := range t.Rows {
		groupType := strings.ToLower(strings.TrimSpace(row["group_type"]))
		entity := strings.TrimSpace(row["entity"])
		group := strings.TrimSpace(row["group"])

		if entity == "" || group == "" {
			continue
		}

		switch groupType {
		case "node":
			nodeGroups[group] = struct{}{}
			groups.NodeMemberships = append(groups.NodeMemberships,
				models.NodeMembership{NodeName: entity, GroupName: group})
		case "process":
			processGroups[group] = struct{}{}
			groups.ProcessMemberships = append(groups.ProcessMemberships,
				models.ProcessMembership{ProcessName: entity, GroupName: group})
		default:
			log.WithField("group_type", row["group_type"]).Warn("unknown group_type, row skipped")
		}
	}

	groups.NodeGroups = sortedKeys(nodeGroups)
	groups.ProcessGroups = sortedKeys(processGroups)
	return groups
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
