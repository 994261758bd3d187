package itinerary

import (
	"context"

	"github.com/google/uuid"
	"github.com/zvrva/travelbook/internal/domain"
)

// Sender delivers a composed itinerary to an address. The address is passed
// through unvalidated.
type Sender interface {
	Send(ctx context.Context, address string, it domain.Itinerary) error
}

// Confirmation acknowledges a share for the caller to render.
type Confirmation struct {
	Reference string
	Address   string
	Items     int
}

type ItineraryUseCase interface {
	Combine(bookings []domain.Booking) domain.Itinerary
	Share(ctx context.Context, it domain.Itinerary, address string) (Confirmation, error)
}

type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Combine copies the given bookings, preserving order, into a new Itinerary.
// No deduplication; the itinerary is independent of the source afterwards.
func (s *Service) Combine(bookings []domain.Booking) domain.Itinerary {
	items := make([]domain.Booking, len(bookings))
	copy(items, bookings)
	return domain.Itinerary{Items: items}
}

// Share hands the itinerary to the sender and returns a confirmation with a
// fresh reference. The itinerary itself is never mutated.
func (s *Service) Share(ctx context.Context, it domain.Itinerary, address string) (Confirmation, error) {
	if s.sender != nil {
		if err := s.sender.Send(ctx, address, it); err != nil {
			return Confirmation{}, err
		}
	}
	return Confirmation{
		Reference: uuid.NewString(),
		Address:   address,
		Items:     len(it.Items),
	}, nil
}

var _ ItineraryUseCase = (*Service)(nil)
