package loyalty

import "github.com/zvrva/travelbook/internal/domain"

// Service decides frequent-traveler discount eligibility. A traveler needs
// strictly more points than the configured minimum.
type Service struct {
	minPoints       int
	discountPercent float64
}

func NewService(minPoints int, discountPercent float64) *Service {
	return &Service{minPoints: minPoints, discountPercent: discountPercent}
}

func (s *Service) Eligible(t domain.Traveler) bool {
	return t.LoyaltyPoints > s.minPoints
}

// EligibleTravelers filters, preserving order.
func (s *Service) EligibleTravelers(travelers []domain.Traveler) []domain.Traveler {
	var eligible []domain.Traveler
	for _, t := range travelers {
		if s.Eligible(t) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// DiscountedPrice applies the configured percentage for eligible travelers
// and returns basePrice unchanged for everyone else.
func (s *Service) DiscountedPrice(t domain.Traveler, basePrice float64) float64 {
	if !s.Eligible(t) {
		return basePrice
	}
	return basePrice * (1 - s.discountPercent/100)
}
