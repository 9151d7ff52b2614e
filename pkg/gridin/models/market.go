package models

// MarketType is the market type enum. Unknown sheet values fall back to
// ENERGY with a warning.
type MarketType string

const (
	MarketTypeEnergy  MarketType = "ENERGY"
	MarketTypeReserve MarketType = "RESERVE"
)

// MarketDirection is the market direction enum. Unknown sheet values fall
// back to nil with a warning.
type MarketDirection string

const (
	DirectionUp      MarketDirection = "UP"
	DirectionDown    MarketDirection = "DOWN"
	DirectionUpDown  MarketDirection = "UP_DOWN"
	DirectionResUp   MarketDirection = "RES_UP"
	DirectionResDown MarketDirection = "RES_DOWN"
)

// Market is the NewMarket input record built from one row of the markets
// sheet. Only Price is filled by enrichment; the other series slots have no
// source sheet and stay empty.
type Market struct {
	Name                   string           `json:"name"`
	MType                  MarketType       `json:"mType"`
	Node                   string           `json:"node"`
	ProcessGroup           string           `json:"processGroup"`
	Direction              *MarketDirection `json:"direction"`
	Realisation            []Value          `json:"realisation"`
	ReserveType            *string          `json:"reserveType"`
	IsBid                  bool             `json:"isBid"`
	IsLimited              bool             `json:"isLimited"`
	MinBid                 float64          `json:"minBid"`
	MaxBid                 float64          `json:"maxBid"`
	Fee                    float64          `json:"fee"`
	Price                  []Value          `json:"price"`
	UpPrice                []Value          `json:"upPrice"`
	DownPrice              []Value          `json:"downPrice"`
	ReserveActivationPrice []Value          `json:"reserveActivationPrice"`
}
