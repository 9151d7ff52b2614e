package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/models"
	"github.com/esmodel-tools/gridin-go/pkg/gridin/tabular"
)

var marketColumns = []string{
	"market",
	"market_type",
	"node",
	"processgroup",
	"direction",
	"realisation",
	"reserve_type",
	"is_bid",
	"is_limited",
	"min_bid",
	"max_bid",
	"fee",
}

// ParseMarkets reads the markets sheet into NewMarket records. A missing
// or empty file degrades to an empty result with a warning, but a present
// sheet missing a required column is fatal. Only the price series is
// filled by enrichment; upPrice, downPrice and reserveActivationPrice
// have no source sheet and stay empty.
func ParseMarkets(path string, log *logrus.Logger) ([]models.Market, error) {
	sheet := filepath.Base(path)

	t, err := tabular.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("sheet", sheet).Warn("sheet file not found, skipping markets")
			return []models.Market{}, nil
		}
		return nil, &SheetError{Sheet: sheet, Err: err}
	}
	if t.Empty() {
		log.WithField("sheet", sheet).Warn("sheet has no data rows, skipping markets")
		return []models.Market{}, nil
	}
	if missing := t.MissingColumns(marketColumns); len(missing) > 0 {
		return nil, &SheetError{
			Sheet: sheet,
			Err:   fmt.Errorf("%w %q (have %v)", ErrMissingColumn, missing[0], t.Headers),
		}
	}

	// Some sheets carry the node reference under market_node instead.
	nodeColumn := "node"
	if t.HasColumn("market_node") {
		nodeColumn = "market_node"
	}

	var markets []models.Market
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["market"])
		if name == "" {
			continue
		}

		markets = append(markets, models.Market{
			Name:                   name,
			MType:                  mapMarketType(row["market_type"], log),
			Node:                   strings.TrimSpace(row[nodeColumn]),
			ProcessGroup:           strings.TrimSpace(row["processgroup"]),
			Direction:              mapDirection(row["direction"], log),
			Realisation:            realisationValues(row["realisation"]),
			ReserveType:            reserveType(row["reserve_type"]),
			IsBid:                  tabular.Bool(row["is_bid"]),
			IsLimited:              tabular.Bool(row["is_limited"]),
			MinBid:                 tabular.Float(row["min_bid"], 0.0),
			MaxBid:                 tabular.Float(row["max_bid"], 0.0),
			Fee:                    tabular.Float(row["fee"], 0.0),
			Price:                  []models.Value{},
			UpPrice:                []models.Value{},
			DownPrice:              []models.Value{},
			ReserveActivationPrice: []models.Value{},
		})
	}
	return markets, nil
}

// mapMarketType maps the market_type column onto the MarketType enum,
// defaulting to ENERGY with a warning on unknown input.
func mapMarketType(raw string, log *logrus.Logger) models.MarketType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "energy", "e":
		return models.MarketTypeEnergy
	case "reserve", "res", "r":
		return models.MarketTypeReserve
	}
	log.WithField("market_type", raw).Warn("unknown market_type, defaulting to ENERGY")
	return models.MarketTypeEnergy
}

// mapDirection maps the direction column onto the MarketDirection enum.
// An empty cell means no direction; unknown input warns and stays nil.
func mapDirection(raw string, log *logrus.Logger) *models.MarketDirection {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	var d models.MarketDirection
	switch s {
	case "up", "u":
		d = models.DirectionUp
	case "down", "d":
		d = models.DirectionDown
	case "up_down", "updown", "both":
		d = models.DirectionUpDown
	case "res_up", "rup", "reserve_up":
		d = models.DirectionResUp
	case "res_down", "rdown", "reserve_down":
		d = models.DirectionResDown
	default:
		log.WithField("direction", raw).Warn("unknown direction, leaving as null")
		return nil
	}
	return &d
}

// realisationValues turns a numeric realisation cell into a single
// scenario-independent constant descriptor.
func realisationValues(raw string) []models.Value {
	if f, ok := tabular.Number(raw); ok {
		return []models.Value{models.NewConstant(nil, f)}
	}
	return []models.Value{}
}

func reserveType(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
