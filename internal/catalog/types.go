package catalog

// Category classifies an attraction. The set is closed: every value the
// catalog uses must appear in Categories and have an entry in categoryInfos.
type Category string

const (
	CategoryMonument   Category = "monument"
	CategoryBeach      Category = "beach"
	CategoryCarnival   Category = "carnival"
	CategoryHistorical Category = "historical"
	CategoryFood       Category = "food"
	CategoryFavela     Category = "favela"
	CategoryBloco      Category = "bloco"
)

// Categories returns every known category in stable display order.
func Categories() []Category {
	return []Category{
		CategoryMonument,
		CategoryBeach,
		CategoryCarnival,
		CategoryHistorical,
		CategoryFood,
		CategoryFavela,
		CategoryBloco,
	}
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// TransportOption describes one way of reaching an attraction from a fixed
// origin neighborhood.
type TransportOption struct {
	Mode     string  `json:"mode" validate:"required"`
	Duration string  `json:"duration" validate:"required"`
	CostBRL  float64 `json:"costInLocalCurrency" validate:"gte=0"`
	Notes    string  `json:"notes,omitempty"`
}

// TransportInfo lists transport options from the two origins the guide
// assumes visitors stay in.
type TransportInfo struct {
	FromCopacabana []TransportOption `json:"fromCopacabana" validate:"required,min=1,dive"`
	FromIpanema    []TransportOption `json:"fromIpanema" validate:"required,min=1,dive"`
}

// Cost holds entry pricing. Zero means free.
type Cost struct {
	AmountBRL   float64 `json:"amountLocal" validate:"gte=0"`
	AmountUSD   float64 `json:"amountForeign" validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
}

// BestTime recommends visiting hours.
type BestTime struct {
	Hours  string `json:"hours" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// Attraction is the central catalog entity. Records are loaded once at
// startup and never mutated; presentation collaborators bind to the JSON
// field names, so they are part of the external contract.
type Attraction struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description" validate:"required"`
	Category      Category      `json:"category" validate:"required"`
	Coordinates   Coordinates   `json:"coordinates"`
	Image         string        `json:"image" validate:"required,url"`
	Cost          Cost          `json:"cost"`
	BestTime      BestTime      `json:"bestTime"`
	Transport     TransportInfo `json:"transport"`
	Tags          []string      `json:"tags" validate:"required,min=1,dive,lowercase"`
	SafetyNotes   string        `json:"safetyNotes,omitempty"`
	LocalTips     string        `json:"localTips,omitempty"`
	VisitDuration string        `json:"visitDuration,omitempty"`
}

// CategoryInfo is per-category display metadata consumed by the map and the
// category filter chips.
type CategoryInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	MarkerColor string `json:"markerColor"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
