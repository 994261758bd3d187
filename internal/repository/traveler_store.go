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

type TravelerRepository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(t domain.Traveler)
	All() []domain.Traveler
	Len() int
}

// FileTravelerStore is the sign-up record store. Same flat-file pattern as
// the booking store, fixed 4-field layout regardless of the booking schema.
type FileTravelerStore struct {
	path    string
	records []domain.Traveler
}

func NewTravelerStore(path string) *FileTravelerStore {
	return &FileTravelerStore{path: path}
}

func (s *FileTravelerStore) Load(ctx context.Context) error {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.records = nil
			return nil
		}
		return fmt.Errorf("open travelers file: %w", err)
	}
	defer file.Close()

	var records []domain.Traveler
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		t, err := codec.DecodeTraveler(line)
		if err != nil {
			log.Printf("skipping %s:%d: %v", s.path, lineNo, err)
			continue
		}
		records = append(records, t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read travelers file: %w", err)
	}

	s.records = records
	return nil
}

func (s *FileTravelerStore) Save(ctx context.Context) error {
	tmp := s.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create travelers file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, t := range s.records {
		if _, err := w.WriteString(codec.EncodeTraveler(t) + "\n"); err != nil {
			file.Close()
			os.Remove(tmp)
			return fmt.Errorf("write travelers file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("write travelers file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close travelers file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace travelers file: %w", err)
	}
	return nil
}

func (s *FileTravelerStore) Add(t domain.Traveler) {
	s.records = append(s.records, t)
}

func (s *FileTravelerStore) All() []domain.Traveler {
	out := make([]domain.Traveler, len(s.records))
	copy(out, s.records)
	return out
}

func (s *FileTravelerStore) Len() int {
	return len(s.records)
}

var _ TravelerRepository = (*FileTravelerStore)(nil)
