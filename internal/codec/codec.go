package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zvrva/travelbook/internal/domain"
)

// Delimiter separates fields within a record line. Field values must not
// contain it; the format defines no quoting or escaping.
const Delimiter = ","

var ErrMalformedRecord = errors.New("malformed record")

// Schema is the fixed field layout of a deployment's backing file.
type Schema int

const (
	// SchemaPlain is destination,date,transportType.
	SchemaPlain Schema = iota
	// SchemaPriced is destination,date,transportType,price.
	SchemaPriced
)

func ParseSchema(name string) (Schema, error) {
	switch name {
	case "plain":
		return SchemaPlain, nil
	case "priced":
		return SchemaPriced, nil
	default:
		return 0, fmt.Errorf("unknown schema %q", name)
	}
}

func (s Schema) fieldCount() int {
	if s == SchemaPriced {
		return 4
	}
	return 3
}

// EncodeBooking renders one record line without the trailing record
// separator; the store owns the newline.
func EncodeBooking(s Schema, b domain.Booking) string {
	fields := []string{b.Destination, b.Date, b.TransportType}
	if s == SchemaPriced {
		fields = append(fields, strconv.FormatFloat(b.Price, 'f', -1, 64))
	}
	return strings.Join(fields, Delimiter)
}

// DecodeBooking splits line on the first fieldCount-1 delimiters. Fewer
// delimiters than the schema requires, or an unparseable price, yield an
// error wrapping ErrMalformedRecord.
func DecodeBooking(s Schema, line string) (domain.Booking, error) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.SplitN(line, Delimiter, s.fieldCount())
	if len(parts) < s.fieldCount() {
		return domain.Booking{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, s.fieldCount(), len(parts))
	}

	b := domain.Booking{
		Destination:   parts[0],
		Date:          parts[1],
		TransportType: parts[2],
	}
	if s == SchemaPriced {
		price, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("%w: bad price %q", ErrMalformedRecord, parts[3])
		}
		b.Price = price
	}
	return b, nil
}

// EncodeTraveler renders a sign-up record: name,id,email,points.
func EncodeTraveler(t domain.Traveler) string {
	fields := []string{
		t.Name,
		strconv.FormatInt(t.ID, 10),
		t.Email,
		strconv.Itoa(t.LoyaltyPoints),
	}
	return strings.Join(fields, Delimiter)
}

func DecodeTraveler(line string) (domain.Traveler, error) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.SplitN(line, Delimiter, 4)
	if len(parts) < 4 {
		return domain.Traveler{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRecord, len(parts))
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return domain.Traveler{}, fmt.Errorf("%w: bad id %q", ErrMalformedRecord, parts[1])
	}
	points, err := strconv.Atoi(parts[3])
	if err != nil {
		return domain.Traveler{}, fmt.Errorf("%w: bad loyalty points %q", ErrMalformedRecord, parts[3])
	}

	return domain.Traveler{
		Name:          parts[0],
		ID:            id,
		Email:         parts[2],
		LoyaltyPoints: points,
	}, nil
}
