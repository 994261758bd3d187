package domain

// Itinerary holds its own copies of the bookings it was built from; mutating
// the source store afterwards does not change an already-built itinerary.
type Itinerary struct {
	Items []Booking
}
