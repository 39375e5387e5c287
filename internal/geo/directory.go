// Package geo answers "which zones are near this one" from stored zip centroids.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
)

const (
	EarthRadiusMiles   = 3959.0
	DefaultRadiusMiles = 50.0

	milesPerDegreeLat = 69.0
)

var ErrUnknownZone = errors.New("zone has no known location")

type CentroidStore interface {
	Centroid(ctx context.Context, db postgres.DB, zone domain.Zone) (postgres.Centroid, error)
	WithinBox(ctx context.Context, db postgres.DB, minLat, maxLat, minLng, maxLng float64) ([]postgres.Centroid, error)
}

type Directory struct {
	store       CentroidStore
	radiusMiles float64
}

func NewDirectory(store CentroidStore, radiusMiles float64) *Directory {
	if radiusMiles <= 0 {
		radiusMiles = DefaultRadiusMiles
	}

	return &Directory{store: store, radiusMiles: radiusMiles}
}

// NearbyZones lists zones within the radius of zone, nearest first.
//
// Parameters:
//   - ctx: request-scoped context.
//   - zone: origin zip code; it is never part of the result.
//   - maxResults: cap on the result length; zero or less means no cap.
//
// Returns:
//   - []domain.NearbyZone: candidates with distances rounded to 0.1 mile.
//   - error: geo.ErrUnknownZone if the origin has no centroid.
func (d *Directory) NearbyZones(ctx context.Context, zone domain.Zone, maxResults int) ([]domain.NearbyZone, error) {
	const op = "geo.Directory.NearbyZones"

	origin, err := d.store.Centroid(ctx, nil, zone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrUnknownZone)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	minLat, maxLat, minLng, maxLng := BoundingBox(origin.Lat, origin.Lng, d.radiusMiles)

	candidates, err := d.store.WithinBox(ctx, nil, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	out := make([]domain.NearbyZone, 0, len(candidates))
	for _, c := range candidates {
		if c.Zone == zone {
			continue
		}

		miles := Haversine(origin.Lat, origin.Lng, c.Lat, c.Lng)
		if miles > d.radiusMiles {
			continue
		}

		out = append(out, domain.NearbyZone{Zone: c.Zone, DistanceMiles: miles})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceMiles != out[j].DistanceMiles {
			return out[i].DistanceMiles < out[j].DistanceMiles
		}
		return out[i].Zone < out[j].Zone
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}

	for i := range out {
		out[i].DistanceMiles = math.Round(out[i].DistanceMiles*10) / 10
	}

	return out, nil
}

// Haversine returns the great-circle distance in miles.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a cheap pre-filter: every point within radiusMiles of (lat, lng) lies inside it.
func BoundingBox(lat, lng, radiusMiles float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := radiusMiles / milesPerDegreeLat

	cos := math.Cos(radians(lat))
	dLng := 180.0
	if cos > 0.01 {
		dLng = radiusMiles / (milesPerDegreeLat * cos)
	}

	return lat - dLat, lat + dLat, lng - dLng, lng + dLng
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
