package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedDatasetIsValid(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	require.NotZero(t, cat.Len())
	assert.Len(t, cat.All(), cat.Len())
}

func TestNew_EveryCategoryHasMetadataAndAttractions(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	seen := make(map[Category]int)
	for _, a := range cat.All() {
		seen[a.Category]++
	}

	for _, c := range Categories() {
		info, ok := Info(c)
		require.True(t, ok, "category %q missing metadata", c)
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.MarkerColor)
		assert.NotZero(t, seen[c], "no attraction in category %q", c)
	}
}

func TestNew_CoordinatesWithinRio(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	// All records are in the city of Rio de Janeiro; a typo'd coordinate
	// shows up as a marker in the ocean or another state.
	for _, a := range cat.All() {
		assert.InDelta(t, -22.95, a.Coordinates.Latitude, 0.15, "latitude of %s", a.ID)
		assert.InDelta(t, -43.20, a.Coordinates.Longitude, 0.15, "longitude of %s", a.ID)
	}
}

func TestByID(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	a, ok := cat.ByID("cristo-redentor")
	require.True(t, ok)
	assert.Equal(t, "Cristo Redentor", a.Name)
	assert.Equal(t, CategoryMonument, a.Category)

	_, ok = cat.ByID("atlantis")
	assert.False(t, ok, "unknown id should miss, not panic")
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	first := cat.All()
	first[0] = Attraction{}

	again := cat.All()
	assert.NotEqual(t, Attraction{}, again[0], "mutating the returned slice must not touch the catalog")
}

func validRecord(id string) Attraction {
	return Attraction{
		ID:          id,
		Name:        "Parque Lage",
		Description: "Palacete e parque aos pés do Corcovado.",
		Category:    CategoryHistorical,
		Coordinates: Coordinates{Latitude: -22.9609, Longitude: -43.2117},
		Image:       "https://images.rioguia.app/attractions/parque-lage.jpg",
		Cost:        Cost{AmountBRL: 0, AmountUSD: 0, Description: "Entrada gratuita"},
		BestTime:    BestTime{Hours: "09:00-12:00", Reason: "Luz da manhã no pátio"},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{{Mode: "onibus", Duration: "30 min", CostBRL: 4.70}},
			FromIpanema:    []TransportOption{{Mode: "onibus", Duration: "25 min", CostBRL: 4.70}},
		},
		Tags: []string{"parque", "jardim"},
	}
}

func TestNewFrom_RejectsDuplicateID(t *testing.T) {
	_, err := newFrom([]Attraction{validRecord("parque-lage"), validRecord("parque-lage")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewFrom_RejectsUnknownCategory(t *testing.T) {
	bad := validRecord("parque-lage")
	bad.Category = Category("volcano")
	_, err := newFrom([]Attraction{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestNewFrom_RejectsOutOfRangeCoordinates(t *testing.T) {
	bad := validRecord("parque-lage")
	bad.Coordinates.Latitude = -95
	_, err := newFrom([]Attraction{bad})
	require.Error(t, err)
}

func TestNewFrom_RejectsNegativeCost(t *testing.T) {
	bad := validRecord("parque-lage")
	bad.Cost.AmountBRL = -1
	_, err := newFrom([]Attraction{bad})
	require.Error(t, err)
}

func TestNewFrom_RejectsMissingImage(t *testing.T) {
	bad := validRecord("parque-lage")
	bad.Image = "not a url"
	_, err := newFrom([]Attraction{bad})
	require.Error(t, err)
}
