package domain

type Traveler struct {
	Name          string
	ID            int64
	Email         string
	LoyaltyPoints int
}
