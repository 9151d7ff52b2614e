package models

// Conversion is the process conversion kind enum.
type Conversion string

const (
	ConversionUnit     Conversion = "UNIT"
	ConversionTransfer Conversion = "TRANSFER"
	ConversionMarket   Conversion = "MARKET"
)

// Process is the NewProcess input record built from one row of the
// processes sheet. Cf is filled by enrichment from the cf sheet; EffTs and
// EffOpsFun have no source sheet yet and stay empty.
type Process struct {
	Name                  string     `json:"name"`
	Conversion            Conversion `json:"conversion"`
	IsCfFix               bool       `json:"isCfFix"`
	IsOnline              bool       `json:"isOnline"`
	IsRes                 bool       `json:"isRes"`
	Eff                   float64    `json:"eff"`
	LoadMin               float64    `json:"loadMin"`
	LoadMax               float64    `json:"loadMax"`
	StartCost             float64    `json:"startCost"`
	MinOnline             float64    `json:"minOnline"`
	MaxOnline             float64    `json:"maxOnline"`
	MinOffline            float64    `json:"minOffline"`
	MaxOffline            float64    `json:"maxOffline"`
	InitialState          bool       `json:"initialState"`
	IsScenarioIndependent bool       `json:"isScenarioIndependent"`
	Cf                    []Value    `json:"cf"`
	EffTs                 []Value    `json:"effTs"`
	EffOpsFun             []Value    `json:"effOpsFun"`
}
