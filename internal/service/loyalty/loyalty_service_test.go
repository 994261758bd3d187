package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zvrva/travelbook/internal/domain"
)

func TestService_Eligible_ThresholdIsStrict(t *testing.T) {
	s := NewService(100, 10)
	assert.False(t, s.Eligible(domain.Traveler{LoyaltyPoints: 100}))
	assert.True(t, s.Eligible(domain.Traveler{LoyaltyPoints: 101}))
}

func TestService_EligibleTravelers_PreservesOrder(t *testing.T) {
	s := NewService(100, 10)
	travelers := []domain.Traveler{
		{Name: "Ann", LoyaltyPoints: 150},
		{Name: "Bob", LoyaltyPoints: 50},
		{Name: "Eve", LoyaltyPoints: 200},
	}
	eligible := s.EligibleTravelers(travelers)
	assert.Len(t, eligible, 2)
	assert.Equal(t, "Ann", eligible[0].Name)
	assert.Equal(t, "Eve", eligible[1].Name)
}

func TestService_DiscountedPrice(t *testing.T) {
	s := NewService(100, 10)
	frequent := domain.Traveler{LoyaltyPoints: 150}
	casual := domain.Traveler{LoyaltyPoints: 10}

	assert.InDelta(t, 90.0, s.DiscountedPrice(frequent, 100.0), 1e-9)
	assert.Equal(t, 100.0, s.DiscountedPrice(casual, 100.0))
}
