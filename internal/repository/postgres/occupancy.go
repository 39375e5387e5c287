package postgres

import (
	"context"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
)

// UsedInRange returns committed occupancy for zone on [from, to]. Dates without a row are omitted.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - db: handle to read through; nil means the pool.
//   - zone: zip code to read.
//   - from, to: inclusive date bounds.
//
// Returns:
//   - map[time.Time]int: used slot count per date.
//   - error: if the query fails.
func (r *SlotRepo) UsedInRange(
	ctx context.Context,
	db DB,
	zone domain.Zone,
	from, to time.Time,
) (map[time.Time]int, error) {
	const op = "postgres.SlotRepo.UsedInRange"

	rows, err := conn(r.pool, db).Query(ctx,
		`SELECT slot_date, used FROM slot_occupancy
		 WHERE zone = $1 AND slot_date BETWEEN $2 AND $3`,
		zone, from, to,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := make(map[time.Time]int)
	for rows.Next() {
		var (
			d    time.Time
			used int
		)
		if err := rows.Scan(&d, &used); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out[d] = used
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// UsedOnDates returns occupancy for several zones on a fixed set of dates in one round trip.
func (r *SlotRepo) UsedOnDates(
	ctx context.Context,
	db DB,
	zones []domain.Zone,
	dates []time.Time,
) (map[domain.Zone]map[time.Time]int, error) {
	const op = "postgres.SlotRepo.UsedOnDates"

	out := make(map[domain.Zone]map[time.Time]int, len(zones))
	if len(zones) == 0 || len(dates) == 0 {
		return out, nil
	}

	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = string(z)
	}

	rows, err := conn(r.pool, db).Query(ctx,
		`SELECT zone, slot_date, used FROM slot_occupancy
		 WHERE zone = ANY($1::text[]) AND slot_date = ANY($2::date[])`,
		names, dates,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var (
			z    domain.Zone
			d    time.Time
			used int
		)
		if err := rows.Scan(&z, &d, &used); err != nil {
			return nil, wrapDBErr(op, err)
		}
		if out[z] == nil {
			out[z] = make(map[time.Time]int)
		}
		out[z][d] = used
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
