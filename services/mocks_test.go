package services_test

import (
	"context"
	"sort"

	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/google/uuid"
)

// --- Mock ProductRepository ---

type mockProductRepo struct {
	products map[string]models.Product
	err      error
}

func newMockProductRepo(products ...models.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProductRepo) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := []models.Product{}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProductRepo) FindAllSortedByName(_ context.Context) ([]models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := []models.Product{}
	for _, p := range m.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.products)), nil
}

// --- Mock CartRepository ---

type mockCartRepo struct {
	carts        map[string]*models.Cart
	createCalls  int
	replaceCalls int
	err          error
}

func newMockCartRepo(carts ...*models.Cart) *mockCartRepo {
	m := &mockCartRepo{carts: make(map[string]*models.Cart)}
	for _, c := range carts {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		m.carts[c.UserID] = c
	}
	return m
}

func (m *mockCartRepo) FindByUserID(_ context.Context, userID string) (*models.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	// Hand out a copy so callers mutate persisted state only via writes.
	clone := *cart
	clone.Items = append([]models.CartItem{}, cart.Items...)
	return &clone, nil
}

func (m *mockCartRepo) Create(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	cart.ID = uuid.NewString()
	m.carts[cart.UserID] = cart
	return cart, nil
}

func (m *mockCartRepo) Replace(_ context.Context, cart *models.Cart) error {
	if m.err != nil {
		return m.err
	}
	m.replaceCalls++
	m.carts[cart.UserID] = cart
	return nil
}

// --- Mock SNS Publisher ---

type mockSNSPublisher struct {
	published [][]byte
	err       error
}

func (m *mockSNSPublisher) Publish(_ context.Context, _ string, message []byte) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, message)
	return nil
}
