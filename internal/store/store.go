// Package store owns the product collection and the SQLite-backed records
// around it.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stocksync/stocksync/internal/model"
)

// Rejections. A rejected operation leaves the snapshot unchanged.
var (
	ErrDuplicateSKU     = errors.New("sku already exists")
	ErrNotFound         = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidDirection = errors.New("invalid adjustment direction")

	// ErrPersist wraps failures writing the snapshot. The mutation is not
	// applied in memory either.
	ErrPersist = errors.New("saving inventory")
)

// Persister reads and writes the full product snapshot.
type Persister interface {
	Load(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
}

// Store holds the current product snapshot. Mutations are serialized; each
// one builds a new snapshot, persists it, and only then publishes it.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	persist  Persister
	now      func() time.Time
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the generator for new product IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Open loads the persisted snapshot and returns a Store serving it.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	products, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	s := &Store{
		products: products,
		persist:  p,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot returns a copy of the current product sequence in insertion order.
func (s *Store) Snapshot() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Get returns the product with the given ID.
func (s *Store) Get(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.products, id); i >= 0 {
		return s.products[i], true
	}
	return model.Product{}, false
}

// Add appends a new product with a fresh ID.
func (s *Store) Add(ctx context.Context, in model.ProductInput) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skuTaken(s.products, in.SKU, "") {
		return model.Product{}, fmt.Errorf("%w: %s", ErrDuplicateSKU, in.SKU)
	}

	id, err := s.freshID()
	if err != nil {
		return model.Product{}, err
	}

	p := fromInput(id, in, s.stamp(time.Time{}))
	next := make([]model.Product, 0, len(s.products)+1)
	next = append(next, s.products...)
	next = append(next, p)

	if err := s.commit(ctx, next); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Edit replaces every authored field of the product, keeping its ID and
// position.
func (s *Store) Edit(ctx context.Context, id string, in model.ProductInput) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, id)
	if i < 0 {
		return model.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if skuTaken(s.products, in.SKU, id) {
		return model.Product{}, fmt.Errorf("%w: %s", ErrDuplicateSKU, in.SKU)
	}

	p := fromInput(id, in, s.stamp(s.products[i].LastUpdated))
	next := slices.Clone(s.products)
	next[i] = p

	if err := s.commit(ctx, next); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Delete removes the product. Deleting an unknown ID does nothing.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, id)
	if i < 0 {
		return nil
	}

	next := make([]model.Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)
	return s.commit(ctx, next)
}

// AdjustStock adds or removes quantity units. Removing more than is on hand
// leaves the stock at zero.
func (s *Store) AdjustStock(ctx context.Context, id string, dir model.Direction, quantity int) (model.Product, error) {
	if quantity <= 0 {
		return model.Product{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if !dir.Valid() {
		return model.Product{}, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, id)
	if i < 0 {
		return model.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	p := s.products[i]
	switch dir {
	case model.DirectionAdd:
		if quantity > math.MaxInt-p.CurrentStock {
			return model.Product{}, fmt.Errorf("%w: %d would overflow stock", ErrInvalidQuantity, quantity)
		}
		p.CurrentStock += quantity
	case model.DirectionRemove:
		p.CurrentStock = max(0, p.CurrentStock-quantity)
	}
	p.LastUpdated = s.stamp(p.LastUpdated)

	next := slices.Clone(s.products)
	next[i] = p

	if err := s.commit(ctx, next); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// commit persists next and publishes it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []model.Product) error {
	if err := s.persist.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.products = next
	return nil
}

// stamp returns the current UTC time, or prev if the clock reads earlier.
func (s *Store) stamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if now.Before(prev) {
		return prev
	}
	return now
}

// freshID returns a generated ID not used by any live product.
func (s *Store) freshID() (string, error) {
	for range 3 {
		id := s.newID()
		if id != "" && indexOf(s.products, id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("generating product id: no unique id after 3 attempts")
}

func fromInput(id string, in model.ProductInput, updated time.Time) model.Product {
	return model.Product{
		ID:               id,
		Name:             in.Name,
		SKU:              in.SKU,
		Category:         in.Category,
		CurrentStock:     in.CurrentStock,
		MinimumThreshold: in.MinimumThreshold,
		UnitPrice:        in.UnitPrice,
		LastUpdated:      updated,
	}
}

func indexOf(products []model.Product, id string) int {
	return slices.IndexFunc(products, func(p model.Product) bool { return p.ID == id })
}

// skuTaken reports whether any product other than exceptID uses sku,
// ignoring case.
func skuTaken(products []model.Product, sku, exceptID string) bool {
	key := model.SKUKey(sku)
	return slices.ContainsFunc(products, func(p model.Product) bool {
		return p.ID != exceptID && model.SKUKey(p.SKU) == key
	})
}
