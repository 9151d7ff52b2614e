package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

func TestParseGroups(t *testing.T) {
	path := writeSheet(t, "groups.csv",
		"group_type,entity,group\n"+
			"node,n2,zone_b\n"+
			"node,n1,zone_a\n"+
			"node,n3,zone_a\n"+
			"process,p1,plants\n")

	groups := ParseGroups(path, quietLogger())

	// group name sets are deduplicated and sorted
	assert.Equal(t, []string{"zone_a", "zone_b"}, groups.NodeGroups)
	assert.Equal(t, []string{"plants"}, groups.ProcessGroups)

	// memberships keep sheet row order
	assert.Equal(t, []models.NodeMembership{
		{NodeName: "n2", GroupName: "zone_b"},
		{NodeName: "n1", GroupName: "zone_a"},
		{NodeName: "n3", GroupName: "zone_a"},
	}, groups.NodeMemberships)
	assert.Equal(t, []models.ProcessMembership{
		{ProcessName: "p1", GroupName: "plants"},
	}, groups.ProcessMemberships)
}

func TestParseGroupsSkipsBadRows(t *testing.T) {
	path := writeSheet(t, "groups.csv",
		"group_type,entity,group\n"+
			"node,,zone_a\n"+
			"node,n1,\n"+
			"cluster,n1,zone_a\n"+
			"NODE,n1,zone_a\n")

	groups := ParseGroups(path, quietLogger())
	require.Len(t, groups.NodeMemberships, 1)
	assert.Equal(t, "n1", groups.NodeMemberships[0].NodeName)
}

func TestParseGroupsOptional(t *testing.T) {
	groups := ParseGroups(filepath.Join(t.TempDir(), "groups.csv"), quietLogger())
	assert.Empty(t, groups.NodeGroups)
	assert.Empty(t, groups.ProcessGroups)
	assert.Empty(t, groups.NodeMemberships)
	assert.Empty(t, groups.ProcessMemberships)
}
