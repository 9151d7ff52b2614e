package parser

import (
	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
)

// Enrichment joins decoded series maps onto previously parsed base
// entities by exact name. The policy is replace, not append: each series
// field is sourced from exactly one sheet, so a matching entry overwrites
// the field wholesale. Entities absent from the map keep their existing
// (typically empty) field.

// AttachNodeCost fills node cost from the node price sheet.
func AttachNodeCost(nodes []models.Node, costs map[string][]models.Value) {
	for i := range nodes {
		if vs, ok := costs[nodes[i].Name]; ok {
			nodes[i].Cost = vs
		}
	}
}

// AttachNodeInflow fills node inflow from the inflow sheet.
func AttachNodeInflow(nodes []models.Node, inflows map[string][]models.Value) {
	for i := range nodes {
		if vs, ok := inflows[nodes[i].Name]; ok {
			nodes[i].Inflow = vs
		}
	}
}

// AttachProcessCf fills process capacity factors from the cf sheet.
func AttachProcessCf(processes []models.Process, cfs map[string][]models.Value) {
	for i := range processes {
		if vs, ok := cfs[processes[i].Name]; ok {
			processes[i].Cf = vs
		}
	}
}

// AttachMarketPrice fills market price from the market prices sheet.
func AttachMarketPrice(markets []models.Market, prices map[string][]models.Value) {
	for i := range markets {
		if vs, ok := prices[markets[i].Name]; ok {
			markets[i].Price = vs
		}
	}
}
