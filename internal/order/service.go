package order

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/rretrocar/storefront-go/internal/cart"
)

// Placer is the remote order-placement collaborator.
type Placer interface {
	PlaceOrder(ctx context.Context, in Input) (string, error)
}

// Carts is the slice of the cart service the order flow needs.
type Carts interface {
	Items(ctx context.Context, key string) []cart.Line
	Clear(ctx context.Context, key string) []cart.Line
}

// EventPublisher announces a placed order to downstream infrastructure.
// Publishing is best-effort once the remote placement succeeded.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, sessionKey string, conf Confirmation, in Input) error
}

// Service orchestrates order placement: assemble the cart, submit it,
// and clear the cart on success. A per-session in-flight guard collapses
// repeated submissions while one is pending.
type Service struct {
	placer    Placer
	carts     Carts
	publisher EventPublisher
	logger    *log.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(placer Placer, carts Carts, publisher EventPublisher, logger *log.Logger) *Service {
	return &Service{
		placer:    placer,
		carts:     carts,
		publisher: publisher,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// Place submits the session's cart as an order. An empty cart is rejected
// before any remote call. On remote failure the cart is left untouched.
func (s *Service) Place(ctx context.Context, sessionKey string) (Confirmation, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[sessionKey]; busy {
		s.mu.Unlock()
		return Confirmation{}, ErrPlacementInFlight
	}
	s.inFlight[sessionKey] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionKey)
		s.mu.Unlock()
	}()

	lines := s.carts.Items(ctx, sessionKey)
	in, err := Assemble(lines)
	if err != nil {
		return Confirmation{}, err
	}

	confirmation, err := s.placer.PlaceOrder(ctx, in)
	if err != nil {
		return Confirmation{}, err
	}

	conf := Confirmation{
		OrderID:      uuid.NewString(),
		Confirmation: confirmation,
		TotalAmount:  in.TotalAmount,
	}

	s.carts.Clear(ctx, sessionKey)

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, sessionKey, conf, in); err != nil {
			s.logger.Printf("publish OrderPlaced for %q: %v", sessionKey, err)
		}
	}

	return conf, nil
}
