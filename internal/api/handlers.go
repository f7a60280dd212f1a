package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rioguia/rioguia-api/internal/catalog"
	"github.com/rioguia/rioguia-api/internal/common"
	"github.com/rioguia/rioguia-api/internal/geo"
	"github.com/rioguia/rioguia-api/internal/limiter"
	"github.com/rioguia/rioguia-api/internal/weather"
)

const (
	// summaryLength caps the description shown on list cards.
	summaryLength = 140

	// defaultNearbyRadiusKm is used when the client omits radius_km.
	defaultNearbyRadiusKm = 5.0

	// featuredInterval caps how often the featured picks reshuffle, so the
	// homepage doesn't change on every reload.
	featuredInterval = 5 * time.Minute

	defaultFeaturedCount = 4
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	cat     *catalog.Catalog
	weather WeatherProvider
	log     *slog.Logger

	featuredGate *limiter.Throttler
	featuredMu   sync.Mutex
	featured     []catalog.Attraction
	rng          *rand.Rand
}

// NewHandlers constructs Handlers over the catalog and weather service.
func NewHandlers(cat *catalog.Catalog, wp WeatherProvider, log *slog.Logger) *Handlers {
	return &Handlers{
		cat:          cat,
		weather:      wp,
		log:          log,
		featuredGate: limiter.NewThrottler(featuredInterval),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// attractionSummary is the card-sized view of an attraction used by list
// endpoints.
type attractionSummary struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    catalog.Category    `json:"category"`
	Summary     string              `json:"summary"`
	CostLabel   string              `json:"costLabel"`
	Coordinates catalog.Coordinates `json:"coordinates"`
	Image       string              `json:"image"`
	Tags        []string            `json:"tags"`
}

func summarize(a catalog.Attraction) attractionSummary {
	return attractionSummary{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Summary:     common.Truncate(a.Description, summaryLength),
		CostLabel:   common.FormatBRL(a.Cost.AmountBRL),
		Coordinates: a.Coordinates,
		Image:       a.Image,
		Tags:        a.Tags,
	}
}

func summarizeAll(list []catalog.Attraction) []attractionSummary {
	out := make([]attractionSummary, 0, len(list))
	for _, a := range list {
		out = append(out, summarize(a))
	}
	return out
}

// parseCategories splits a comma-separated categories parameter into a
// selection set. Unknown values are kept as-is; they simply match nothing.
func parseCategories(raw string) map[catalog.Category]bool {
	selected := make(map[catalog.Category]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			selected[catalog.Category(strings.ToLower(part))] = true
		}
	}
	return selected
}

// ListAttractions handles GET /api/v1/attractions?q=&categories=.
// Free-text search and category filtering intersect; both default to
// "no filter" when absent.
func (h *Handlers) ListAttractions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	selected := parseCategories(r.URL.Query().Get("categories"))

	result := catalog.CombinedFilter(query, selected, h.cat.All())

	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(result),
		"attractions": summarizeAll(result),
	})
}

// GetAttraction handles GET /api/v1/attractions/{id}.
func (h *Handlers) GetAttraction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, ok := h.cat.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "attraction not found"})
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// Nearby handles GET /api/v1/attractions/nearby?lat=&lng=&radius_km=.
// Results are sorted by ascending distance.
func (h *Handlers) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat must be a number in [-90, 90]"})
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lng must be a number in [-180, 180]"})
		return
	}

	radius := defaultNearbyRadiusKm
	if raw := q.Get("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "radius_km must be a positive number"})
			return
		}
	}

	results := geo.Nearby(lat, lng, radius, h.cat.All())
	if results == nil {
		results = []geo.Result{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(results),
		"results": results,
	})
}

// Featured handles GET /api/v1/attractions/featured?count=.
// The shuffled order is held for a few minutes between reshuffles.
func (h *Handlers) Featured(w http.ResponseWriter, r *http.Request) {
	count := defaultFeaturedCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count must be a positive integer"})
			return
		}
		count = n
	}

	picks := h.featuredPicks()
	if count > len(picks) {
		count = len(picks)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":       count,
		"attractions": summarizeAll(picks[:count]),
	})
}

func (h *Handlers) featuredPicks() []catalog.Attraction {
	h.featuredMu.Lock()
	defer h.featuredMu.Unlock()

	if h.featuredGate.Allow() || h.featured == nil {
		h.featured = common.Shuffle(h.cat.All(), h.rng)
	}
	return h.featured
}

// categoryEntry is one row of the categories listing.
type categoryEntry struct {
	Category catalog.Category `json:"category"`
	catalog.CategoryInfo
	Count int `json:"count"`
}

// Categories handles GET /api/v1/categories: metadata plus per-category
// attraction counts, in the fixed display order.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	grouped := common.GroupByCategory(h.cat.All())

	entries := make([]categoryEntry, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		info, ok := catalog.Info(c)
		if !ok {
			// New guarantees coverage; reaching here is a programming error.
			h.log.Error("category missing metadata", "category", c)
			continue
		}
		entries = append(entries, categoryEntry{
			Category:     c,
			CategoryInfo: info,
			Count:        len(grouped[c]),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": entries})
}

// weatherResponse wraps a reading with the flag that marks it as simulated
// data, so clients never present it as a real observation.
type weatherResponse struct {
	Simulated bool `json:"simulated"`
	weather.Reading
}

// Weather handles GET /api/v1/weather with cached-or-refresh semantics.
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	reading := h.weather.Current(r.Context())
	writeJSON(w, http.StatusOK, weatherResponse{Simulated: true, Reading: reading})
}

// RefreshWeather handles POST /api/v1/weather/refresh. The refresh runs
// asynchronously and bursts coalesce, so the response is 202 and the caller
// polls GET /weather for the new reading.
func (h *Handlers) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	h.weather.RequestRefresh()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh scheduled"})
}

// HealthHandlerFunc returns an http.HandlerFunc reporting weather cache
// backend reachability. The catalog is in-process and cannot be down.
func HealthHandlerFunc(store storePinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		cacheStatus := "ok"
		overall := "ok"

		if err := store.Ping(ctx); err != nil {
			log.Error("health check: weather cache ping failed", "err", err)
			cacheStatus = "error"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"cache":  cacheStatus,
		})
	}
}
