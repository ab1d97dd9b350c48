package api

import (
	"context"
	"sort"
	"sync"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
)

type memCatalog struct {
	mu       sync.Mutex
	services []models.Service
	tiers    []models.PriceTier
	nextID   int64
}

func (m *memCatalog) ListActiveServices(context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Service
	for _, s := range m.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memCatalog) ListPriceTiers(_ context.Context, serviceID int64) ([]models.PriceTier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.PriceTier
	for _, t := range m.tiers {
		if t.ServiceID == serviceID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memCatalog) ListServices(context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Service(nil), m.services...), nil
}

func (m *memCatalog) GetService(_ context.Context, id int64) (models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, domain.NotFoundError{Resource: "service"}
}

func (m *memCatalog) FindServiceBySlug(_ context.Context, slug string) (models.Service, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.services {
		if s.Slug == slug {
			return s, true, nil
		}
	}
	return models.Service{}, false, nil
}

func (m *memCatalog) CreateService(_ context.Context, s models.Service) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	m.services = append(m.services, s)
	return s.ID, nil
}

func (m *memCatalog) SetServiceActive(_ context.Context, id int64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services[i].Active = active
		}
	}
	return nil
}

func (m *memCatalog) ListAllPriceTiers(context.Context) ([]models.PriceTier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.PriceTier(nil), m.tiers...), nil
}

func (m *memCatalog) GetPriceTier(_ context.Context, id int64) (models.PriceTier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return models.PriceTier{}, domain.NotFoundError{Resource: "service price"}
}

func (m *memCatalog) FindPriceTier(_ context.Context, serviceID int64, capacity int, period string) (models.PriceTier, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tiers {
		if t.ServiceID == serviceID && t.Capacity == capacity && t.Period == period {
			return t, true, nil
		}
	}
	return models.PriceTier{}, false, nil
}

func (m *memCatalog) CreatePriceTier(_ context.Context, t models.PriceTier) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	t.ID = m.nextID
	m.tiers = append(m.tiers, t)
	return t.ID, nil
}

func (m *memCatalog) UpdatePriceTier(_ context.Context, t models.PriceTier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tiers {
		if m.tiers[i].ID == t.ID {
			m.tiers[i] = t
			return nil
		}
	}
	return domain.NotFoundError{Resource: "service price"}
}

func (m *memCatalog) DeletePriceTier(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tiers {
		if m.tiers[i].ID == id {
			m.tiers = append(m.tiers[:i], m.tiers[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "service price"}
}

type memOrders struct {
	mu     sync.Mutex
	orders map[int64]models.Order
	nextID int64
}

func (m *memOrders) Create(_ context.Context, o models.Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o.ID = m.nextID
	m.orders[o.ID] = o
	return o.ID, nil
}

func (m *memOrders) Get(_ context.Context, id int64) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return o, nil
}

func (m *memOrders) List(context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memOrders) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return domain.NotFoundError{Resource: "order"}
	}
	delete(m.orders, id)
	return nil
}

func (m *memOrders) Mutate(_ context.Context, id int64, fn func(*models.Order) error) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	if err := fn(&o); err != nil {
		return models.Order{}, err
	}
	m.orders[id] = o
	return o, nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (m *memUsers) Create(_ context.Context, u models.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = int64(len(m.users) + 1)
	m.users[u.Username] = u
	return u.ID, nil
}
