package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/domain"
)

type Centroid struct {
	Zone domain.Zone
	Lat  float64
	Lng  float64
}

type ZoneRepo struct {
	pool *pgxpool.Pool
}

func (r *ZoneRepo) Centroid(ctx context.Context, db DB, zone domain.Zone) (Centroid, error) {
	const op = "postgres.ZoneRepo.Centroid"

	c := Centroid{Zone: zone}
	if err := conn(r.pool, db).QueryRow(ctx,
		`SELECT lat, lng FROM zone_centroids WHERE zone = $1`,
		zone,
	).Scan(&c.Lat, &c.Lng); err != nil {
		return Centroid{}, wrapDBErr(op, err)
	}

	return c, nil
}

// WithinBox returns every centroid inside the lat/lng rectangle, bounds inclusive.
func (r *ZoneRepo) WithinBox(
	ctx context.Context,
	db DB,
	minLat, maxLat, minLng, maxLng float64,
) ([]Centroid, error) {
	const op = "postgres.ZoneRepo.WithinBox"

	rows, err := conn(r.pool, db).Query(ctx,
		`SELECT zone, lat, lng FROM zone_centroids
		 WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4`,
		minLat, maxLat, minLng, maxLng,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Centroid])
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// BatchPut upserts centroids in one round trip.
func (r *ZoneRepo) BatchPut(ctx context.Context, db DB, centroids []Centroid) error {
	const op = "postgres.ZoneRepo.BatchPut"

	batch := &pgx.Batch{}
	for _, c := range centroids {
		batch.Queue(
			`INSERT INTO zone_centroids(zone, lat, lng)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (zone) DO UPDATE SET lat = EXCLUDED.lat, lng = EXCLUDED.lng`,
			c.Zone, c.Lat, c.Lng,
		)
	}
	if err := conn(r.pool, db).SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
