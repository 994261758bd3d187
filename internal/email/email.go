package email

import (
	"context"
	"fmt"
	"io"

	"github.com/zvrva/travelbook/internal/domain"
)

// Sender renders a share acknowledgement. There is no real delivery; the
// system is a local single-process tool.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, address string, it domain.Itinerary) error {
	_, err := fmt.Fprintf(s.out, "Itinerary with %d bookings sent to: %s\n", len(it.Items), address)
	return err
}
