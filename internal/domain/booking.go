package domain

// Booking is a single travel reservation. Price stays 0 when the deployment
// runs the plain (price-less) schema.
type Booking struct {
	Destination   string
	Date          string
	TransportType string
	Price         float64
}
