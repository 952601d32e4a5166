package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alertwatch/alertwatch/internal/domain"
)

// Store keeps alerts in a map. Used by tests and when no DATABASE_URL is
// configured.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	alerts map[int64]*domain.Alert
}

func New() *Store {
	return &Store{alerts: make(map[int64]*domain.Alert)}
}

func (m *Store) Create(ctx context.Context, email string, threshold float64) (*domain.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	a := &domain.Alert{
		ID:        m.nextID,
		Email:     email,
		Threshold: threshold,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	m.alerts[a.ID] = a
	return copyAlert(a), nil
}

func (m *Store) GetByID(ctx context.Context, id int64) (*domain.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a := m.alerts[id]
	if a == nil {
		return nil, nil
	}
	return copyAlert(a), nil
}

func (m *Store) List(ctx context.Context, active *bool) ([]*domain.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Alert, 0, len(m.alerts))
	for _, a := range m.alerts {
		if active != nil && a.Active != *active {
			continue
		}
		out = append(out, copyAlert(a))
	}
	return out, nil
}

func (m *Store) Update(ctx context.Context, a *domain.Alert, upd domain.Update) (*domain.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.alerts[a.ID]
	if cur == nil {
		return nil, fmt.Errorf("update alert %d: not found", a.ID)
	}
	upd.Apply(cur)
	return copyAlert(cur), nil
}

func (m *Store) Delete(ctx context.Context, a *domain.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.alerts[a.ID] == nil {
		return fmt.Errorf("delete alert %d: not found", a.ID)
	}
	delete(m.alerts, a.ID)
	return nil
}

// copyAlert hands callers their own copy so they can't mutate the map's
// record outside the lock.
func copyAlert(a *domain.Alert) *domain.Alert {
	c := *a
	if a.TriggeredAt != nil {
		ts := *a.TriggeredAt
		c.TriggeredAt = &ts
	}
	return &c
}
