package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/ports/dispatchtx"
)

const dispositionColumns = `id, key, driver_id, loading_city, loading_company, unloading_city, unloading_company,
        cargo, weight_class, deadline, accepted, created_at`

// DispositionRepo represents the disposition store.
type DispositionRepo struct {
	db *pgxpool.Pool
}

// NewDispositionRepo creates a new DispositionRepo.
func NewDispositionRepo(db *pgxpool.Pool) *DispositionRepo {
	return &DispositionRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DispositionRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// rollback on panic
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSecondAccepted(err) {
			return apperr.ErrConflictingAcceptedAssignment
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Create inserts a disposition and returns its id.
func (r *DispositionRepo) Create(ctx context.Context, a *domain.Assignment) (int64, error) {
	if err := insertDisposition(ctx, r.db, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

// MostRecentAccepted returns the newest accepted disposition of any driver, or nil.
func (r *DispositionRepo) MostRecentAccepted(ctx context.Context) (*domain.Assignment, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+dispositionColumns+`
        FROM dispositions
        WHERE accepted
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `)
	a, err := scanDisposition(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("most recent accepted disposition: %w", err)
	}
	return a, nil
}

// FindAccepted returns the accepted disposition of a driver, or nil.
func (r *DispositionRepo) FindAccepted(ctx context.Context, driverID int64) (*domain.Assignment, error) {
	return findAccepted(ctx, r.db, driverID)
}

// FindUnaccepted returns the unaccepted dispositions of a driver, newest first.
func (r *DispositionRepo) FindUnaccepted(ctx context.Context, driverID int64) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+dispositionColumns+`
        FROM dispositions
        WHERE driver_id = $1 AND NOT accepted
        ORDER BY created_at DESC, id DESC
    `, driverID)
	if err != nil {
		return nil, fmt.Errorf("find unaccepted dispositions of driver %d: %w", driverID, err)
	}
	defer rows.Close()

	out := make([]domain.Assignment, 0)
	for rows.Next() {
		a, err := scanDisposition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// Delete removes a disposition of a driver.
func (r *DispositionRepo) Delete(ctx context.Context, driverID, id int64) error {
	return deleteDisposition(ctx, r.db, driverID, id)
}

// SetAccepted flips the accepted flag of a driver's disposition.
func (r *DispositionRepo) SetAccepted(ctx context.Context, driverID, id int64, accepted bool) error {
	return setAccepted(ctx, r.db, driverID, id, accepted)
}

// DeleteExpired removes unaccepted dispositions whose deadline is before now.
func (r *DispositionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM dispositions WHERE NOT accepted AND deadline < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired dispositions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	q querier
}

// GetForUpdate locks and returns a driver's disposition, or nil.
func (r *TxRepo) GetForUpdate(ctx context.Context, driverID, id int64) (*domain.Assignment, error) {
	row := r.q.QueryRow(ctx, `
        SELECT `+dispositionColumns+`
        FROM dispositions
        WHERE id = $1 AND driver_id = $2
        FOR UPDATE
    `, id, driverID)
	a, err := scanDisposition(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get disposition %d for update: %w", id, err)
	}
	return a, nil
}

// FindAccepted returns the accepted disposition of a driver, or nil.
func (r *TxRepo) FindAccepted(ctx context.Context, driverID int64) (*domain.Assignment, error) {
	return findAccepted(ctx, r.q, driverID)
}

// SetAccepted flips the accepted flag of a driver's disposition.
func (r *TxRepo) SetAccepted(ctx context.Context, driverID, id int64, accepted bool) error {
	return setAccepted(ctx, r.q, driverID, id, accepted)
}

// Delete removes a disposition of a driver.
func (r *TxRepo) Delete(ctx context.Context, driverID, id int64) error {
	return deleteDisposition(ctx, r.q, driverID, id)
}

// Insert inserts a disposition and sets its id and creation time.
func (r *TxRepo) Insert(ctx context.Context, a *domain.Assignment) error {
	return insertDisposition(ctx, r.q, a)
}

func insertDisposition(ctx context.Context, q querier, a *domain.Assignment) error {
	err := q.QueryRow(ctx, `
        INSERT INTO dispositions (key, driver_id, loading_city, loading_company, unloading_city,
            unloading_company, cargo, weight_class, deadline, accepted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `, a.Key, a.DriverID, a.LoadingCity, a.LoadingCompany, a.UnloadingCity,
		a.UnloadingCompany, a.CargoLabel, a.WeightClass, a.Deadline, a.Accepted,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isSecondAccepted(err) {
			return apperr.ErrConflictingAcceptedAssignment
		}
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert disposition: %w", err)
	}
	return nil
}

func findAccepted(ctx context.Context, q querier, driverID int64) (*domain.Assignment, error) {
	row := q.QueryRow(ctx, `
        SELECT `+dispositionColumns+`
        FROM dispositions
        WHERE driver_id = $1 AND accepted
    `, driverID)
	a, err := scanDisposition(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find accepted disposition of driver %d: %w", driverID, err)
	}
	return a, nil
}

func setAccepted(ctx context.Context, q querier, driverID, id int64, accepted bool) error {
	ct, err := q.Exec(ctx, `
        UPDATE dispositions
        SET accepted = $3
        WHERE id = $1 AND driver_id = $2
    `, id, driverID, accepted)
	if err != nil {
		if isSecondAccepted(err) {
			return apperr.ErrConflictingAcceptedAssignment
		}
		return fmt.Errorf("set disposition %d accepted=%t: %w", id, accepted, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func deleteDisposition(ctx context.Context, q querier, driverID, id int64) error {
	ct, err := q.Exec(ctx, `DELETE FROM dispositions WHERE id = $1 AND driver_id = $2`, id, driverID)
	if err != nil {
		return fmt.Errorf("delete disposition %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanDisposition(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.Key, &a.DriverID, &a.LoadingCity, &a.LoadingCompany, &a.UnloadingCity,
		&a.UnloadingCompany, &a.CargoLabel, &a.WeightClass, &a.Deadline, &a.Accepted, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
