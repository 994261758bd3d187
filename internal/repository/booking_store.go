package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/zvrva/travelbook/internal/codec"
	"github.com/zvrva/travelbook/internal/domain"
)

var ErrIndexOutOfRange = errors.New("booking index out of range")

type BookingRepository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(b domain.Booking)
	UpdateAt(index int, b domain.Booking) error
	RemoveAt(index int) error
	All() []domain.Booking
	Len() int
	Skipped() int
}

// FileBookingStore keeps the bookings in memory, in insertion order, backed
// by a single delimited text file. Indices are 0-based; the CLI boundary owns
// the 1-based translation.
type FileBookingStore struct {
	path    string
	schema  codec.Schema
	records []domain.Booking
	skipped int
}

func NewBookingStore(path string, schema codec.Schema) *FileBookingStore {
	return &FileBookingStore{path: path, schema: schema}
}

// Load replaces the in-memory records with the backing file's contents. A
// missing file leaves the store empty and is not an error. Malformed lines
// are logged and skipped so one corrupt line cannot destroy the rest of the
// dataset; Skipped reports how many were dropped.
func (s *FileBookingStore) Load(ctx context.Context) error {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.records = nil
			s.skipped = 0
			return nil
		}
		return fmt.Errorf("open bookings file: %w", err)
	}
	defer file.Close()

	var records []domain.Booking
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		b, err := codec.DecodeBooking(s.schema, line)
		if err != nil {
			log.Printf("skipping %s:%d: %v", s.path, lineNo, err)
			skipped++
			continue
		}
		records = append(records, b)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read bookings file: %w", err)
	}

	s.records = records
	s.skipped = skipped
	return nil
}

// Save rewrites the whole backing file from the in-memory records. The write
// goes to a temporary file that is renamed over the backing path, so a crash
// mid-write never leaves a truncated file behind.
func (s *FileBookingStore) Save(ctx context.Context) error {
	tmp := s.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create bookings file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, b := range s.records {
		if _, err := w.WriteString(codec.EncodeBooking(s.schema, b) + "\n"); err != nil {
			file.Close()
			os.Remove(tmp)
			return fmt.Errorf("write bookings file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("write bookings file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close bookings file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace bookings file: %w", err)
	}
	return nil
}

// Add appends. Equal bookings are allowed and stay distinct by position.
func (s *FileBookingStore) Add(b domain.Booking) {
	s.records = append(s.records, b)
}

func (s *FileBookingStore) UpdateAt(index int, b domain.Booking) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.records))
	}
	s.records[index] = b
	return nil
}

// RemoveAt deletes the record at index. Later records shift one position
// earlier, so callers must re-resolve indices after a removal.
func (s *FileBookingStore) RemoveAt(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(s.records))
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return nil
}

// All returns a snapshot of the records in current order. Mutating the store
// afterwards does not affect a slice already returned.
func (s *FileBookingStore) All() []domain.Booking {
	out := make([]domain.Booking, len(s.records))
	copy(out, s.records)
	return out
}

func (s *FileBookingStore) Len() int {
	return len(s.records)
}

// Skipped is the number of malformed lines dropped by the last Load.
func (s *FileBookingStore) Skipped() int {
	return s.skipped
}

var _ BookingRepository = (*FileBookingStore)(nil)
