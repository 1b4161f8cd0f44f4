package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"justdeliver-dispatch/internal/domain"
)

const offerColumns = `id, key, loading_city, loading_company, unloading_city, unloading_company,
        cargo, weight_class, income, trailer, created_at`

// OfferRepo represents the offers market store.
type OfferRepo struct {
	db *pgxpool.Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(db *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{db: db}
}

// CreateBatch inserts offers in one round trip and fills their ids and creation times.
func (r *OfferRepo) CreateBatch(ctx context.Context, offers []domain.Offer) error {
	batch := &pgx.Batch{}
	for i := range offers {
		o := &offers[i]
		batch.Queue(`
            INSERT INTO offers (key, loading_city, loading_company, unloading_city, unloading_company,
                cargo, weight_class, income, trailer)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id, created_at
        `, o.Key, o.LoadingCity, o.LoadingCompany, o.UnloadingCity, o.UnloadingCompany,
			o.CargoLabel, o.WeightClass, o.Income, string(o.Trailer),
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&o.ID, &o.CreatedAt)
		})
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert offers: %w", err)
	}
	return nil
}

// List returns offers newest first. If limit/offset are nil, returns the full list.
func (r *OfferRepo) List(ctx context.Context, limit, offset *int) ([]domain.Offer, error) {
	q := `SELECT ` + offerColumns + ` FROM offers ORDER BY created_at DESC, id DESC`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Offer, 0, capacity)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// TakeOffer removes an offer from the market and returns it, or nil if it is gone.
func (r *TxRepo) TakeOffer(ctx context.Context, offerID int64) (*domain.Offer, error) {
	row := r.q.QueryRow(ctx, `DELETE FROM offers WHERE id = $1 RETURNING `+offerColumns, offerID)
	o, err := scanOffer(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("take offer %d: %w", offerID, err)
	}
	return o, nil
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var (
		o       domain.Offer
		trailer string
	)
	err := row.Scan(&o.ID, &o.Key, &o.LoadingCity, &o.LoadingCompany, &o.UnloadingCity, &o.UnloadingCompany,
		&o.CargoLabel, &o.WeightClass, &o.Income, &trailer, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Trailer = domain.TrailerType(trailer)
	return &o, nil
}
