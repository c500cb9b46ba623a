package memory

import (
	"sync"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/marketplace"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/seller"
)

var _ marketplace.Registry = (*Marketplace)(nil)

// Marketplace is an in-memory registry. Entries are held behind pointers so
// references handed out by the Find methods stay valid as the slices grow.
// Writes through those pointers are only synchronized with listings when made
// inside Update.
type Marketplace struct {
	mu        sync.RWMutex
	sellers   []*seller.Seller
	customers []*customer.Customer
	products  []*product.Product
}

func NewMarketplace() *Marketplace {
	return &Marketplace{}
}

func (m *Marketplace) AddSeller(s seller.Seller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sellers = append(m.sellers, &s)
}

func (m *Marketplace) AddCustomer(c customer.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, &c)
}

func (m *Marketplace) AddProduct(p product.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, &p)
}

func (m *Marketplace) ListSellers() []seller.Seller {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.sellers)
}

func (m *Marketplace) ListCustomers() []customer.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.customers)
}

func (m *Marketplace) ListProducts() []product.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.products)
}

// FindProduct returns the first product, in insertion order, whose name matches exactly.
func (m *Marketplace) FindProduct(name string) (*product.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return findFirst(m.products, func(p *product.Product) bool { return p.Name == name })
}

// FindCustomer returns the first customer, in insertion order, whose name matches exactly.
func (m *Marketplace) FindCustomer(name string) (*customer.Customer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return findFirst(m.customers, func(c *customer.Customer) bool { return c.Name == name })
}

// Update holds the write lock for the duration of fn.
func (m *Marketplace) Update(fn func(tx marketplace.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(lockedView{m})
}

// lockedView reads the slices without locking; it is only handed out while Update holds mu.
type lockedView struct{ m *Marketplace }

func (v lockedView) FindProduct(name string) (*product.Product, bool) {
	return findFirst(v.m.products, func(p *product.Product) bool { return p.Name == name })
}

func (v lockedView) FindCustomer(name string) (*customer.Customer, bool) {
	return findFirst(v.m.customers, func(c *customer.Customer) bool { return c.Name == name })
}

func snapshot[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	return out
}

func findFirst[T any](items []*T, match func(*T) bool) (*T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	return nil, false
}
