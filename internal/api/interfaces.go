package api

import (
	"context"

	"github.com/rioguia/rioguia-api/internal/weather"
)

// WeatherProvider is the weather surface handlers need: the current
// (cached-or-fresh) reading and a fire-and-forget forced refresh.
type WeatherProvider interface {
	Current(ctx context.Context) weather.Reading
	RequestRefresh()
}

// storePinger reports weather cache backend reachability for the health
// endpoint.
type storePinger interface {
	Ping(ctx context.Context) error
}
