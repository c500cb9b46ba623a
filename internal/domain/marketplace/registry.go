package marketplace

import (
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/seller"
)

// Registry keeps the marketplace's own copies of sellers, customers and products
// in insertion order. Find methods return pointers into that storage, so changes
// made through them show up in later listings.
type Registry interface {
	AddSeller(s seller.Seller)
	AddCustomer(c customer.Customer)
	AddProduct(p product.Product)

	ListSellers() []seller.Seller
	ListCustomers() []customer.Customer
	ListProducts() []product.Product

	FindProduct(name string) (*product.Product, bool)
	FindCustomer(name string) (*customer.Customer, bool)

	// Update runs fn with exclusive access to the stored entries. Listings taken
	// concurrently see the state either before or after fn, never in between.
	Update(fn func(tx Tx) error) error
}

// Tx looks up stored entries from inside Update. Its pointers must not be kept
// after fn returns.
type Tx interface {
	FindProduct(name string) (*product.Product, bool)
	FindCustomer(name string) (*customer.Customer, bool)
}
