package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository"
)

// AdRepo reads the externally owned ads table. Only payment_status is written here.
type AdRepo struct {
	pool *pgxpool.Pool
}

// TargetZone returns the zone an ad is booked into.
func (r *AdRepo) TargetZone(ctx context.Context, db DB, adID string) (domain.Zone, error) {
	const op = "postgres.AdRepo.TargetZone"

	var zone domain.Zone
	if err := conn(r.pool, db).QueryRow(ctx,
		`SELECT target_zone FROM ads WHERE id = $1`,
		adID,
	).Scan(&zone); err != nil {
		return "", wrapDBErr(op, err)
	}

	return zone, nil
}

func (r *AdRepo) SetPaymentStatus(ctx context.Context, db DB, adID string, status domain.PaymentStatus) error {
	const op = "postgres.AdRepo.SetPaymentStatus"

	tag, err := conn(r.pool, db).Exec(ctx,
		`UPDATE ads SET payment_status = $2 WHERE id = $1`,
		adID, status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// ClearPending puts a pending ad back to unpaid. Paid ads are left alone.
func (r *AdRepo) ClearPending(ctx context.Context, db DB, adID string) error {
	const op = "postgres.AdRepo.ClearPending"

	if _, err := conn(r.pool, db).Exec(ctx,
		`UPDATE ads SET payment_status = 'unpaid' WHERE id = $1 AND payment_status = 'pending'`,
		adID,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Put registers an ad or moves it to another zone.
func (r *AdRepo) Put(ctx context.Context, db DB, adID string, zone domain.Zone) error {
	const op = "postgres.AdRepo.Put"

	if _, err := conn(r.pool, db).Exec(ctx,
		`INSERT INTO ads(id, target_zone)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET target_zone = EXCLUDED.target_zone`,
		adID, zone,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
