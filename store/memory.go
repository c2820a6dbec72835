package store

import (
	"context"
	"sync"
	"time"

	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/samber/lo"
)

// MemoryStore keeps invoices in process memory for the life of the server.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Invoice

	ids billing.IDGenerator
	now func() time.Time
}

// NewMemoryStore returns an empty store. A nil generator defaults to UUIDs.
func NewMemoryStore(ids billing.IDGenerator) *MemoryStore {
	if ids == nil {
		ids = billing.UUIDGenerator{}
	}
	return &MemoryStore{
		byID: make(map[string]models.Invoice),
		ids:  ids,
		now:  time.Now,
	}
}

func (s *MemoryStore) Add(_ context.Context, inv models.Invoice) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv = inv.Clone()
	inv.ID = s.ids.NewID()
	inv.CreatedAt = s.now().UTC()
	inv.UpdatedAt = inv.CreatedAt
	if inv.Items == nil {
		inv.Items = []models.LineItem{}
	}
	s.byID[inv.ID] = inv
	s.order = append(s.order, inv.ID)
	return inv.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, patch models.InvoicePatch, checks ...Check) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.byID[id]
	if !ok {
		return models.Invoice{}, notFound(id)
	}
	if err := runChecks(inv.Clone(), checks); err != nil {
		return models.Invoice{}, err
	}
	inv = inv.Apply(patch)
	inv.UpdatedAt = s.now().UTC()
	s.byID[id] = inv
	return inv.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return notFound(id)
	}
	delete(s.byID, id)
	s.order = lo.Without(s.order, id)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.byID[id]
	if !ok {
		return models.Invoice{}, notFound(id)
	}
	return inv.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context, filter ListFilter) ([]models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoices := make([]models.Invoice, 0, len(s.order))
	for _, id := range s.order {
		if inv := s.byID[id]; filter.Match(inv) {
			invoices = append(invoices, inv.Clone())
		}
	}
	return invoices, nil
}
