// Package portstest provides in-memory implementations of the ports for tests.
package portstest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"clans/src/core/domain"
	"clans/src/core/ports"
)

var _ ports.ClanRepository = (*ClanRepository)(nil)

// ClanRepository is an in-memory ports.ClanRepository that counts calls.
// Setting Err makes every data call fail with it.
type ClanRepository struct {
	mu    sync.Mutex
	clans map[uuid.UUID]domain.Clan
	calls int
	now   time.Time

	Err       error
	HealthErr error
}

func NewClanRepository() *ClanRepository {
	return &ClanRepository{
		clans: make(map[uuid.UUID]domain.Clan),
		now:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Calls returns how many data operations reached the repository.
func (r *ClanRepository) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *ClanRepository) Health(ctx context.Context) error {
	return r.HealthErr
}

func (r *ClanRepository) Create(ctx context.Context, name, region string) (*domain.Clan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.Err != nil {
		return nil, r.Err
	}

	// Strictly increasing timestamps keep created_at ordering deterministic.
	r.now = r.now.Add(time.Second)
	createdAt := r.now
	clan := domain.Clan{
		ID:        uuid.New(),
		Name:      name,
		Region:    region,
		CreatedAt: &createdAt,
	}
	r.clans[clan.ID] = clan
	return &clan, nil
}

func (r *ClanRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Clan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]domain.Clan, 0, len(r.clans))
	for _, c := range r.clans {
		if q.Region != nil && c.Region != *q.Region {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		cmp := compare(out[i], out[j], q.SortBy)
		if cmp == 0 {
			cmp = strings.Compare(out[i].ID.String(), out[j].ID.String())
		}
		if q.Order == domain.OrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	if q.Offset >= len(out) {
		return []domain.Clan{}, nil
	}
	out = out[q.Offset:]
	if q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *ClanRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.Err != nil {
		return nil, r.Err
	}

	c, ok := r.clans[id]
	if !ok {
		return nil, domain.NewNotFoundError("Clan not found")
	}
	return &c, nil
}

func (r *ClanRepository) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.Err != nil {
		return uuid.Nil, r.Err
	}

	if _, ok := r.clans[id]; !ok {
		return uuid.Nil, domain.NewNotFoundError("Clan not found")
	}
	delete(r.clans, id)
	return id, nil
}

func compare(a, b domain.Clan, f domain.SortField) int {
	switch f {
	case domain.SortByName:
		return strings.Compare(a.Name, b.Name)
	case domain.SortByRegion:
		return strings.Compare(a.Region, b.Region)
	case domain.SortByCreatedAt:
		return a.CreatedAt.Compare(*b.CreatedAt)
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}
