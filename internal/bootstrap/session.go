package bootstrap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zvrva/travelbook/internal/domain"
	"github.com/zvrva/travelbook/internal/repository"
	"github.com/zvrva/travelbook/internal/service/itinerary"
	"github.com/zvrva/travelbook/internal/service/loyalty"
	"github.com/zvrva/travelbook/internal/service/pricing"
)

// Services bundles everything the interactive session drives.
type Services struct {
	Bookings    repository.BookingRepository
	Travelers   repository.TravelerRepository
	Pricing     *pricing.Policy
	Itineraries itinerary.ItineraryUseCase
	Loyalty     *loyalty.Service
}

type session struct {
	in  *bufio.Scanner
	out io.Writer
	svc Services

	// bookings created during this session, the basis for travel history,
	// itinerary composition and recommendations
	history []domain.Booking
}

// Run loads both stores, then drives the menu loop until the user exits, the
// input ends, or ctx is canceled. Both stores are saved on the way out.
// User-facing booking indices are 1-based; the store API is 0-based.
func Run(ctx context.Context, svc Services, in io.Reader, out io.Writer) error {
	s := &session{in: bufio.NewScanner(in), out: out, svc: svc}

	if err := svc.Bookings.Load(ctx); err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	if svc.Bookings.Len() == 0 && svc.Bookings.Skipped() == 0 {
		fmt.Fprintln(out, "No previous bookings found.")
	} else {
		fmt.Fprintf(out, "Loaded %d bookings", svc.Bookings.Len())
		if n := svc.Bookings.Skipped(); n > 0 {
			fmt.Fprintf(out, " (%d malformed lines skipped)", n)
		}
		fmt.Fprintln(out, ".")
	}
	if err := svc.Travelers.Load(ctx); err != nil {
		return fmt.Errorf("load travelers: %w", err)
	}

	for {
		if ctx.Err() != nil {
			return s.shutdown(ctx)
		}

		s.printMenu()
		choice, ok := s.readLine("Choose an option: ")
		if !ok {
			return s.shutdown(ctx)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.createBooking()
		case "2":
			s.modifyBooking()
		case "3":
			s.cancelBooking()
		case "4":
			s.generateReports()
		case "5":
			s.planMultiModal()
		case "6":
			s.offerDiscounts()
		case "7":
			s.generateItinerary()
		case "8":
			s.shareItinerary(ctx)
		case "9":
			s.viewTravelHistory()
		case "10":
			s.recommendations()
		case "11":
			s.registerTraveler()
		case "12":
			s.setSeasonMultiplier()
		case "13":
			if err := s.save(ctx); err != nil {
				fmt.Fprintf(s.out, "Save failed: %v\n", err)
			}
		case "14":
			fmt.Fprintln(s.out, "Exiting the program. Goodbye!")
			return s.shutdown(ctx)
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprint(s.out, `
=== Travel Booking System Menu ===
1. Create Booking
2. Modify Booking
3. Cancel Booking
4. Generate Reports
5. Plan Multi-Modal Travel
6. Offer Discounts
7. Generate Itinerary
8. Share Itinerary
9. View Travel History
10. Personalized Recommendations
11. Register Traveler
12. Set Season Multiplier
13. Save
14. Exit
`)
}

func (s *session) shutdown(ctx context.Context) error {
	if err := s.save(ctx); err != nil {
		return err
	}
	return nil
}

func (s *session) save(ctx context.Context) error {
	if err := s.svc.Bookings.Save(ctx); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	if err := s.svc.Travelers.Save(ctx); err != nil {
		return fmt.Errorf("save travelers: %w", err)
	}
	fmt.Fprintln(s.out, "Bookings saved successfully.")
	return nil
}

// readLine prompts and reads one input line. ok is false once input ends.
func (s *session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) readIndex(prompt string) (int, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		fmt.Fprintln(s.out, "Invalid booking index.")
		return 0, false
	}
	return n, true
}

func (s *session) promptBooking() (domain.Booking, bool) {
	destination, ok := s.readLine("Enter destination: ")
	if !ok {
		return domain.Booking{}, false
	}
	date, ok := s.readLine("Enter travel date (YYYY-MM-DD): ")
	if !ok {
		return domain.Booking{}, false
	}
	transport, ok := s.readLine("Enter transport type (Flight/Train/Bus): ")
	if !ok {
		return domain.Booking{}, false
	}
	priceLine, ok := s.readLine("Enter base price: ")
	if !ok {
		return domain.Booking{}, false
	}
	price, err := strconv.ParseFloat(priceLine, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid price.")
		return domain.Booking{}, false
	}

	season, ok := s.readLine("Season for dynamic pricing (blank for none): ")
	if !ok {
		return domain.Booking{}, false
	}
	if season != "" {
		price = s.svc.Pricing.Price(season, price)
		fmt.Fprintf(s.out, "Dynamic price: %.2f\n", price)
	}

	return domain.Booking{
		Destination:   destination,
		Date:          date,
		TransportType: transport,
		Price:         price,
	}, true
}

func (s *session) createBooking() {
	b, ok := s.promptBooking()
	if !ok {
		return
	}
	s.svc.Bookings.Add(b)
	s.history = append(s.history, b)
	fmt.Fprintln(s.out, "Booking added successfully.")
}

func (s *session) modifyBooking() {
	index, ok := s.readIndex("Enter booking index to modify: ")
	if !ok {
		return
	}
	b, ok := s.promptBooking()
	if !ok {
		return
	}
	if err := s.svc.Bookings.UpdateAt(index-1, b); err != nil {
		fmt.Fprintln(s.out, "Invalid booking index.")
		return
	}
	fmt.Fprintln(s.out, "Booking modified successfully.")
}

func (s *session) cancelBooking() {
	index, ok := s.readIndex("Enter booking index to cancel: ")
	if !ok {
		return
	}
	if err := s.svc.Bookings.RemoveAt(index - 1); err != nil {
		fmt.Fprintln(s.out, "Invalid booking index.")
		return
	}
	fmt.Fprintln(s.out, "Booking canceled successfully.")
}

func (s *session) printBooking(b domain.Booking) {
	fmt.Fprintf(s.out, "Destination: %s\nDate: %s\nTransport Type: %s\nPrice: %.2f\n",
		b.Destination, b.Date, b.TransportType, b.Price)
}

func (s *session) generateReports() {
	fmt.Fprintln(s.out, "\n=== Booking Reports ===")
	for i, b := range s.svc.Bookings.All() {
		fmt.Fprintf(s.out, "Booking %d:\n", i+1)
		s.printBooking(b)
		fmt.Fprintln(s.out)
	}
}

func (s *session) planMultiModal() {
	fmt.Fprintln(s.out, "Planning multi-modal travel...")
	fmt.Fprintln(s.out, "Suggested Itinerary: Flight to City A, Train to City B, Bus to City C.")
	for _, t := range []domain.Transport{domain.TransportFlight, domain.TransportTrain, domain.TransportBus} {
		fmt.Fprintln(s.out, t.Description())
	}
}

func (s *session) offerDiscounts() {
	eligible := s.svc.Loyalty.EligibleTravelers(s.svc.Travelers.All())
	if len(eligible) == 0 {
		fmt.Fprintln(s.out, "No frequent travelers eligible for a discount.")
		return
	}
	fmt.Fprintln(s.out, "Offering discounts to frequent travelers...")
	for _, t := range eligible {
		fmt.Fprintf(s.out, "Discount offered to:\nName: %s\nID: %d\nEmail: %s\nLoyalty Points: %d\n\n",
			t.Name, t.ID, t.Email, t.LoyaltyPoints)
	}
}

func (s *session) generateItinerary() {
	it := s.svc.Itineraries.Combine(s.history)
	fmt.Fprintln(s.out, "\n=== Detailed Travel Itinerary ===")
	for i, b := range it.Items {
		fmt.Fprintf(s.out, "Booking %d:\n", i+1)
		s.printBooking(b)
		fmt.Fprintln(s.out)
	}
}

func (s *session) shareItinerary(ctx context.Context) {
	address, ok := s.readLine("Enter address to share with: ")
	if !ok {
		return
	}
	it := s.svc.Itineraries.Combine(s.history)
	conf, err := s.svc.Itineraries.Share(ctx, it, address)
	if err != nil {
		fmt.Fprintf(s.out, "Share failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Itinerary sent to: %s (reference %s)\n", conf.Address, conf.Reference)
}

func (s *session) viewTravelHistory() {
	if len(s.history) == 0 {
		fmt.Fprintln(s.out, "No travel history found.")
		return
	}
	fmt.Fprintln(s.out, "\n=== Travel History ===")
	for i, b := range s.history {
		fmt.Fprintf(s.out, "Itinerary %d:\n", i+1)
		s.printBooking(b)
		fmt.Fprintln(s.out)
	}
}

func (s *session) recommendations() {
	fmt.Fprintln(s.out, "\n=== Personalized Recommendations ===")
	if len(s.history) == 0 {
		fmt.Fprintln(s.out, "No recommendations available. Please book an itinerary first.")
		return
	}
	fmt.Fprintln(s.out, "Based on your travel history, consider these destinations:")
	fmt.Fprintln(s.out, "- Destination A (popular choice for travelers like you)")
	fmt.Fprintln(s.out, "- Destination B (scenic and relaxing)")
	fmt.Fprintln(s.out, "- Destination C (adventurous and exciting)")
}

func (s *session) registerTraveler() {
	name, ok := s.readLine("Enter traveler name: ")
	if !ok {
		return
	}
	idLine, ok := s.readLine("Enter traveler id: ")
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idLine, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid traveler id.")
		return
	}
	address, ok := s.readLine("Enter traveler email: ")
	if !ok {
		return
	}
	pointsLine, ok := s.readLine("Enter loyalty points: ")
	if !ok {
		return
	}
	points, err := strconv.Atoi(pointsLine)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid loyalty points.")
		return
	}

	s.svc.Travelers.Add(domain.Traveler{Name: name, ID: id, Email: address, LoyaltyPoints: points})
	fmt.Fprintln(s.out, "Traveler registered successfully.")
}

func (s *session) setSeasonMultiplier() {
	season, ok := s.readLine("Enter season name: ")
	if !ok {
		return
	}
	line, ok := s.readLine("Enter price multiplier: ")
	if !ok {
		return
	}
	multiplier, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid multiplier.")
		return
	}
	s.svc.Pricing.SetMultiplier(season, multiplier)
	fmt.Fprintf(s.out, "Seasons with dynamic pricing: %s\n", strings.Join(s.svc.Pricing.Seasons(), ", "))
}
