package disposition_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
	"justdeliver-dispatch/internal/logx"
	"justdeliver-dispatch/internal/ports/dispatchtx"
	"justdeliver-dispatch/internal/service/disposition"
)

// memStore keeps dispositions in memory and rejects a second accepted row per driver
// the way the partial unique index does.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Assignment
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[int64]domain.Assignment)}
}

type memTx struct{ s *memStore }

func (s *memStore) WithTx(_ context.Context, fn func(tx dispatchtx.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[int64]domain.Assignment, len(s.rows))
	for k, v := range s.rows {
		snapshot[k] = v
	}
	if err := fn(memTx{s: s}); err != nil {
		s.rows = snapshot
		return err
	}
	return nil
}

func (s *memStore) Create(_ context.Context, a *domain.Assignment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(a)
}

func (s *memStore) insert(a *domain.Assignment) (int64, error) {
	if a.Accepted && s.acceptedOf(a.DriverID) != nil {
		return 0, apperr.ErrConflictingAcceptedAssignment
	}
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Unix(s.nextID, 0)
	s.rows[a.ID] = *a
	return a.ID, nil
}

func (s *memStore) acceptedOf(driverID int64) *domain.Assignment {
	for _, a := range s.rows {
		if a.DriverID == driverID && a.Accepted {
			cp := a
			return &cp
		}
	}
	return nil
}

func (s *memStore) FindAccepted(_ context.Context, driverID int64) (*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acceptedOf(driverID), nil
}

func (s *memStore) FindUnaccepted(_ context.Context, driverID int64) ([]domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Assignment
	for _, a := range s.rows {
		if a.DriverID == driverID && !a.Accepted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) Delete(_ context.Context, driverID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(driverID, id)
}

func (s *memStore) delete(driverID, id int64) error {
	a, ok := s.rows[id]
	if !ok || a.DriverID != driverID {
		return apperr.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, a := range s.rows {
		if !a.Accepted && a.Deadline.Before(now) {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

func (t memTx) GetForUpdate(_ context.Context, driverID, id int64) (*domain.Assignment, error) {
	a, ok := t.s.rows[id]
	if !ok || a.DriverID != driverID {
		return nil, nil
	}
	return &a, nil
}

func (t memTx) FindAccepted(_ context.Context, driverID int64) (*domain.Assignment, error) {
	return t.s.acceptedOf(driverID), nil
}

func (t memTx) SetAccepted(_ context.Context, driverID, id int64, accepted bool) error {
	a, ok := t.s.rows[id]
	if !ok || a.DriverID != driverID {
		return apperr.ErrNotFound
	}
	if accepted {
		if cur := t.s.acceptedOf(driverID); cur != nil && cur.ID != id {
			return apperr.ErrConflictingAcceptedAssignment
		}
	}
	a.Accepted = accepted
	t.s.rows[id] = a
	return nil
}

func (t memTx) Delete(_ context.Context, driverID, id int64) error {
	return t.s.delete(driverID, id)
}

func (t memTx) Insert(_ context.Context, a *domain.Assignment) error {
	_, err := t.s.insert(a)
	return err
}

func (t memTx) TakeOffer(context.Context, int64) (*domain.Offer, error) {
	return nil, nil
}

type fixedRoute struct{}

func (fixedRoute) Route(context.Context, domain.AssignmentRequest) (domain.Route, error) {
	return domain.Route{
		LoadingCity:      "Warsaw",
		LoadingCompany:   "ACME",
		UnloadingCity:    "Berlin",
		UnloadingCompany: domain.AnyCompany,
	}, nil
}

func acceptedCount(t *testing.T, s *memStore, driverID int64) int {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.rows {
		if a.DriverID == driverID && a.Accepted {
			n++
		}
	}
	return n
}

func TestService_AtMostOneAccepted_RandomOperations(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		store := newMemStore()
		svc := disposition.NewService(store, fixedRoute{}, disposition.Defaults{}, disposition.Metrics{}, time.Second, logx.Nop())
		rnd := rand.New(rand.NewPCG(seed, seed*7))
		ctx := context.Background()

		var ids []int64
		for i := 0; i < 200; i++ {
			driverID := int64(rnd.IntN(3) + 1)
			switch op := rnd.IntN(4); {
			case op == 0 || len(ids) == 0:
				a, err := svc.Generate(ctx, domain.AssignmentRequest{DriverID: driverID})
				require.NoError(t, err)
				ids = append(ids, a.ID)
			case op == 1:
				_, err := svc.Accept(ctx, driverID, ids[rnd.IntN(len(ids))])
				if err != nil {
					require.True(t, isExpected(err), "seed %d: unexpected error %v", seed, err)
				}
			case op == 2:
				_, err := svc.Cancel(ctx, driverID, ids[rnd.IntN(len(ids))])
				if err != nil {
					require.ErrorIs(t, err, apperr.ErrNotFound)
				}
			default:
				err := svc.Delete(ctx, driverID, ids[rnd.IntN(len(ids))])
				if err != nil {
					require.ErrorIs(t, err, apperr.ErrNotFound)
				}
			}
			for d := int64(1); d <= 3; d++ {
				require.LessOrEqual(t, acceptedCount(t, store, d), 1, "seed %d step %d driver %d", seed, i, d)
			}
		}
	}
}

func isExpected(err error) bool {
	return errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflictingAcceptedAssignment)
}

func TestService_AcceptSecond_KeepsOriginal(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := disposition.NewService(store, fixedRoute{}, disposition.Defaults{}, disposition.Metrics{}, time.Second, logx.Nop())
	ctx := context.Background()

	first, err := svc.Generate(ctx, domain.AssignmentRequest{DriverID: 1})
	require.NoError(t, err)
	second, err := svc.Generate(ctx, domain.AssignmentRequest{DriverID: 1})
	require.NoError(t, err)

	_, err = svc.Accept(ctx, 1, first.ID)
	require.NoError(t, err)

	_, err = svc.Accept(ctx, 1, second.ID)
	require.ErrorIs(t, err, apperr.ErrConflictingAcceptedAssignment)

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got.Accepted)
	require.Equal(t, first.ID, got.Accepted.ID)
	require.Len(t, got.Unaccepted, 1)
	require.Equal(t, second.ID, got.Unaccepted[0].ID)
}

func TestService_ConcurrentAccepts_OneWins(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := disposition.NewService(store, fixedRoute{}, disposition.Defaults{}, disposition.Metrics{}, time.Second, logx.Nop())
	ctx := context.Background()

	ids := make([]int64, 8)
	for i := range ids {
		a, err := svc.Generate(ctx, domain.AssignmentRequest{DriverID: 1})
		require.NoError(t, err)
		ids[i] = a.ID
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, err := svc.Accept(ctx, 1, id); err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	require.Equal(t, 1, won)
	require.Equal(t, 1, acceptedCount(t, store, 1))
}
