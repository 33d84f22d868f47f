package cart

import (
	"context"
	"log"

	"github.com/rretrocar/storefront-go/internal/catalog"
)

// Store persists the cart line list as a single blob per session key.
// Load returns nil lines when no cart exists for the key.
type Store interface {
	Load(ctx context.Context, key string) ([]Line, error)
	Save(ctx context.Context, key string, lines []Line) error
}

// Service runs cart operations against stored state: load, apply, save.
// Storage is strictly best-effort. A failed or corrupt load degrades to
// an empty cart and a failed save is logged and ignored, so a shopper
// never sees a cart operation fail.
type Service struct {
	store  Store
	logger *log.Logger
}

func NewService(store Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Items returns the current cart lines for a session.
func (s *Service) Items(ctx context.Context, key string) []Line {
	return s.load(ctx, key)
}

// AddToCart adds one unit of the product, merging with an existing line
// when the selection matches. Returns the resulting cart.
func (s *Service) AddToCart(ctx context.Context, key string, p catalog.Product, chosen []SelectedAttribute) []Line {
	lines := Add(s.load(ctx, key), p, chosen)
	s.save(ctx, key, lines)
	return lines
}

// RemoveFromCart removes the matching line, if any.
func (s *Service) RemoveFromCart(ctx context.Context, key string, productID string, attrs []SelectedAttribute) []Line {
	lines := Remove(s.load(ctx, key), productID, attrs)
	s.save(ctx, key, lines)
	return lines
}

// UpdateQuantity sets the matching line's quantity; zero or below removes it.
func (s *Service) UpdateQuantity(ctx context.Context, key string, productID string, attrs []SelectedAttribute, quantity int) []Line {
	lines := SetQuantity(s.load(ctx, key), productID, attrs, quantity)
	s.save(ctx, key, lines)
	return lines
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, key string) []Line {
	lines := []Line{}
	s.save(ctx, key, lines)
	return lines
}

func (s *Service) load(ctx context.Context, key string) []Line {
	lines, err := s.store.Load(ctx, key)
	if err != nil {
		s.logger.Printf("load cart %q: %v (continuing with empty cart)", key, err)
		return nil
	}
	return lines
}

func (s *Service) save(ctx context.Context, key string, lines []Line) {
	if err := s.store.Save(ctx, key, lines); err != nil {
		s.logger.Printf("save cart %q: %v (change not persisted)", key, err)
	}
}
