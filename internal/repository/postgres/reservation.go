package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository"
)

const constraintAdDate = "reservation_dates_ad_date_key"

// SlotRepo owns slot occupancy and the reservations that hold it.
// Every method takes the DB handle to run on; nil means the pool.
type SlotRepo struct {
	pool *pgxpool.Pool
}

// Claim reserves every date of req for one ad, or nothing.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - db: transaction to run in; nil opens a read-committed transaction of its own.
//   - req: validated claim (distinct, sorted, in-window dates).
//
// Returns:
//   - domain.Reservation: the new reservation, or the existing one for the same ad and date set.
//   - bool: true when an existing reservation was returned unchanged.
//   - error: domain.SlotFullError listing every date already at capacity.
//   - error: repository.ErrDatesAlreadyHeld if the ad holds some dates in another reservation.
func (r *SlotRepo) Claim(
	ctx context.Context,
	db DB,
	req domain.ClaimRequest,
) (domain.Reservation, bool, error) {
	const op = "postgres.SlotRepo.Claim"

	var (
		res      domain.Reservation
		existing bool
	)

	err := r.inTx(ctx, db, func(ctx context.Context, tx DB) error {
		var err error
		res, existing, err = r.claimCore(ctx, tx, req)
		return err
	})
	if err != nil {
		return domain.Reservation{}, false, wrapDBErr(op, err)
	}

	return res, existing, nil
}

// Release gives back dates held by a reservation.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - db: transaction to run in; nil opens a read-committed transaction of its own.
//   - id: reservation to release from.
//   - dates: dates to release; empty releases all of them.
//
// Returns:
//   - domain.Reservation: the reservation after the release.
//   - []time.Time: the dates actually released.
//   - error: repository.ErrNotFound if the reservation does not exist.
//   - error: repository.ErrReservationReleased if it was already fully released.
func (r *SlotRepo) Release(
	ctx context.Context,
	db DB,
	id uuid.UUID,
	dates []time.Time,
) (domain.Reservation, []time.Time, error) {
	const op = "postgres.SlotRepo.Release"

	var (
		res      domain.Reservation
		released []time.Time
	)

	err := r.inTx(ctx, db, func(ctx context.Context, tx DB) error {
		var err error
		res, released, err = r.releaseCore(ctx, tx, id, dates)
		return err
	})
	if err != nil {
		return domain.Reservation{}, nil, wrapDBErr(op, err)
	}

	return res, released, nil
}

// SetStatus moves a live reservation to status.
func (r *SlotRepo) SetStatus(ctx context.Context, db DB, id uuid.UUID, status domain.ReservationStatus) error {
	const op = "postgres.SlotRepo.SetStatus"

	tag, err := conn(r.pool, db).Exec(ctx,
		`UPDATE reservations
		 SET status = $2, updated_at = now()
		 WHERE id = $1 AND status <> 'released'`,
		id, status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *SlotRepo) Get(ctx context.Context, db DB, id uuid.UUID) (domain.Reservation, error) {
	const op = "postgres.SlotRepo.Get"

	res, err := r.getCore(ctx, conn(r.pool, db), id, false)
	if err != nil {
		return domain.Reservation{}, wrapDBErr(op, err)
	}

	return res, nil
}

// ReservedDates lists the distinct dates held by live reservations, oldest first.
// An empty adID matches every ad and zero bounds leave the range open.
func (r *SlotRepo) ReservedDates(ctx context.Context, db DB, adID string, from, to time.Time) ([]time.Time, error) {
	const op = "postgres.SlotRepo.ReservedDates"

	dates, err := scanDates(conn(r.pool, db).Query(ctx,
		`SELECT DISTINCT slot_date FROM reservation_dates
		 WHERE ($1 = '' OR ad_id = $1)
		   AND ($2::date IS NULL OR slot_date >= $2)
		   AND ($3::date IS NULL OR slot_date <= $3)
		 ORDER BY slot_date`,
		adID, optionalDate(from), optionalDate(to),
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return dates, nil
}

func optionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *SlotRepo) inTx(ctx context.Context, db DB, fn func(ctx context.Context, tx DB) error) error {
	if db != nil {
		return fn(ctx, db)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *SlotRepo) claimCore(
	ctx context.Context,
	db DB,
	req domain.ClaimRequest,
) (domain.Reservation, bool, error) {
	const op = "postgres.SlotRepo.claimCore"

	key := domain.DatesKey(req.Dates)

	if _, err := db.Exec(ctx,
		`INSERT INTO slot_occupancy(zone, slot_date)
		 SELECT $1, d FROM unnest($2::date[]) AS d
		 ON CONFLICT (zone, slot_date) DO NOTHING`,
		req.Zone, req.Dates,
	); err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT slot_date, used FROM slot_occupancy
		 WHERE zone = $1 AND slot_date = ANY($2::date[])
		 ORDER BY slot_date
		 FOR UPDATE`,
		req.Zone, req.Dates,
	)
	if err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	var full []time.Time
	for rows.Next() {
		var (
			d    time.Time
			used int
		)
		if err := rows.Scan(&d, &used); err != nil {
			rows.Close()
			return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
		}
		if used >= req.Capacity {
			full = append(full, d)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	// the slot rows are locked from here on, so claims for the same dates by the same ad
	// see each other's committed reservations
	var id uuid.UUID
	err = db.QueryRow(ctx,
		`SELECT id FROM reservations
		 WHERE ad_id = $1 AND dates_key = $2 AND status <> 'released'`,
		req.AdID, key,
	).Scan(&id)
	switch {
	case err == nil:
		res, err := r.getCore(ctx, db, id, false)
		if err != nil {
			return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
		}
		return res, true, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	held, err := scanDates(db.Query(ctx,
		`SELECT slot_date FROM reservation_dates
		 WHERE ad_id = $1 AND slot_date = ANY($2::date[])
		 ORDER BY slot_date`,
		req.AdID, req.Dates,
	))
	if err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}
	if len(held) > 0 {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w: %s", op, repository.ErrDatesAlreadyHeld, domain.JoinDates(held))
	}

	if len(full) > 0 {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, domain.SlotFullError{Dates: full})
	}

	tag, err := db.Exec(ctx,
		`UPDATE slot_occupancy
		 SET used = used + 1, updated_at = now()
		 WHERE zone = $1 AND slot_date = ANY($2::date[]) AND used < $3`,
		req.Zone, req.Dates, req.Capacity,
	)
	if err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	if int(tag.RowsAffected()) != len(req.Dates) {
		// rows are locked above, so this only happens if the caller broke the tx contract
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, repository.ErrConflict)
	}

	status := req.Status
	if status == "" {
		status = domain.ReservationHeld
	}

	res := domain.Reservation{
		ID:     uuid.New(),
		AdID:   req.AdID,
		Zone:   req.Zone,
		Dates:  req.Dates,
		Status: status,
	}

	if err := db.QueryRow(ctx,
		`INSERT INTO reservations(id, ad_id, zone, dates_key, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		res.ID, res.AdID, res.Zone, key, res.Status,
	).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	batch := &pgx.Batch{}
	for _, d := range req.Dates {
		batch.Queue(
			`INSERT INTO reservation_dates(reservation_id, ad_id, zone, slot_date)
			 VALUES ($1, $2, $3, $4)`,
			res.ID, res.AdID, res.Zone, d,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err, constraintAdDate) {
			return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, repository.ErrDatesAlreadyHeld)
		}
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	return res, false, nil
}

func (r *SlotRepo) releaseCore(
	ctx context.Context,
	db DB,
	id uuid.UUID,
	dates []time.Time,
) (domain.Reservation, []time.Time, error) {
	const op = "postgres.SlotRepo.releaseCore"

	res, err := r.getCore(ctx, db, id, true)
	if err != nil {
		return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
	}

	if res.Status == domain.ReservationReleased {
		return res, nil, fmt.Errorf("%s:%w", op, repository.ErrReservationReleased)
	}

	var released []time.Time
	if len(dates) == 0 {
		released, err = scanDates(db.Query(ctx,
			`DELETE FROM reservation_dates
			 WHERE reservation_id = $1
			 RETURNING slot_date`,
			id,
		))
	} else {
		released, err = scanDates(db.Query(ctx,
			`DELETE FROM reservation_dates
			 WHERE reservation_id = $1 AND slot_date = ANY($2::date[])
			 RETURNING slot_date`,
			id, dates,
		))
	}
	if err != nil {
		return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
	}

	released = domain.SortDates(released)

	if len(released) > 0 {
		if _, err := db.Exec(ctx,
			`UPDATE slot_occupancy
			 SET used = used - 1, updated_at = now()
			 WHERE zone = $1 AND slot_date = ANY($2::date[]) AND used > 0`,
			res.Zone, released,
		); err != nil {
			return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	remaining := subtractDates(res.Dates, released)

	if len(remaining) == 0 {
		res.Status = domain.ReservationReleased
		if _, err := db.Exec(ctx,
			`UPDATE reservations SET status = 'released', updated_at = now() WHERE id = $1`,
			id,
		); err != nil {
			return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
		}
	} else if len(released) > 0 {
		if _, err := db.Exec(ctx,
			`UPDATE reservations SET dates_key = $2, updated_at = now() WHERE id = $1`,
			id, domain.DatesKey(remaining),
		); err != nil {
			return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	res.Dates = remaining

	return res, released, nil
}

func (r *SlotRepo) getCore(ctx context.Context, db DB, id uuid.UUID, forUpdate bool) (domain.Reservation, error) {
	const op = "postgres.SlotRepo.getCore"

	q := `SELECT id, ad_id, zone, status, created_at, updated_at
		  FROM reservations WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}

	var res domain.Reservation
	if err := db.QueryRow(ctx, q, id).Scan(
		&res.ID, &res.AdID, &res.Zone, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return domain.Reservation{}, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	dates, err := scanDates(db.Query(ctx,
		`SELECT slot_date FROM reservation_dates
		 WHERE reservation_id = $1
		 ORDER BY slot_date`,
		id,
	))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s:%w", op, err)
	}

	res.Dates = dates

	return res, nil
}

func scanDates(rows pgx.Rows, err error) ([]time.Time, error) {
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (time.Time, error) {
		var d time.Time
		err := row.Scan(&d)
		return d, err
	})
}

func subtractDates(all, drop []time.Time) []time.Time {
	gone := make(map[time.Time]struct{}, len(drop))
	for _, d := range drop {
		gone[d] = struct{}{}
	}

	var out []time.Time
	for _, d := range all {
		if _, ok := gone[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}
