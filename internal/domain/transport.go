package domain

type Transport string

const (
	TransportFlight Transport = "Flight"
	TransportTrain  Transport = "Train"
	TransportBus    Transport = "Bus"
)

// Description returns the display text for the known transport kinds. Unknown
// labels are shown as-is; transport types are free-form in the data model.
func (t Transport) Description() string {
	switch t {
	case TransportFlight:
		return "Flight: Flight Number - FL123, Departure - 10:00 AM."
	case TransportTrain:
		return "Train: Train Number - TR456, Departure - 9:30 AM."
	case TransportBus:
		return "Bus: Route Number - B123, Departure - 8:00 AM."
	default:
		return string(t)
	}
}
