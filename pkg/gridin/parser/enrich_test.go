package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

func TestAttachNodeInflow(t *testing.T) {
	nodes := []models.Node{
		{Name: "tank1", Cost: []models.Value{}, Inflow: []models.Value{}},
		{Name: "grid", Cost: []models.Value{}, Inflow: []models.Value{}},
	}
	inflows := map[string][]models.Value{
		"tank1": {models.NewConstant(nil, 1.0)},
	}

	AttachNodeInflow(nodes, inflows)

	require.Len(t, nodes[0].Inflow, 1)
	assert.Equal(t, 1.0, *nodes[0].Inflow[0].Constant)
	// entities absent from the map keep their empty field
	assert.Empty(t, nodes[1].Inflow)
	// the sibling field is untouched
	assert.Empty(t, nodes[0].Cost)
}

func TestAttachReplacesNotAppends(t *testing.T) {
	nodes := []models.Node{
		{Name: "n1", Cost: []models.Value{models.NewConstant(nil, 9.9)}},
	}
	costs := map[string][]models.Value{
		"n1": {models.NewSeries(nil, []float64{1, 2})},
	}

	AttachNodeCost(nodes, costs)

	require.Len(t, nodes[0].Cost, 1)
	assert.Equal(t, []float64{1, 2}, nodes[0].Cost[0].Series)
}

func TestAttachProcessCfAndMarketPrice(t *testing.T) {
	processes := []models.Process{{Name: "solar", Cf: []models.Value{}}}
	markets := []models.Market{{Name: "npe", Price: []models.Value{}}}

	AttachProcessCf(processes, map[string][]models.Value{
		"solar": {models.NewSeries(nil, []float64{0.1, 0.2})},
	})
	AttachMarketPrice(markets, map[string][]models.Value{
		"npe": {models.NewConstant(nil, 50.0)},
	})

	assert.Len(t, processes[0].Cf, 1)
	assert.Len(t, markets[0].Price, 1)
}
