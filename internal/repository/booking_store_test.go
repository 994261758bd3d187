package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvrva/travelbook/internal/codec"
	"github.com/zvrva/travelbook/internal/domain"
)

func tempStore(t *testing.T) *FileBookingStore {
	t.Helper()
	return NewBookingStore(filepath.Join(t.TempDir(), "bookings.txt"), codec.SchemaPriced)
}

func TestBookingStore_Load_MissingFileIsFirstRun(t *testing.T) {
	store := tempStore(t)
	err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, store.Skipped())
}

func TestBookingStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	store := NewBookingStore(path, codec.SchemaPriced)
	require.NoError(t, store.Load(ctx))
	store.Add(domain.Booking{Destination: "Paris", Date: "2024-05-01", TransportType: "Flight", Price: 199.99})
	store.Add(domain.Booking{Destination: "Rome", Date: "2024-06-10", TransportType: "Train", Price: 89})
	want := store.All()
	require.NoError(t, store.Save(ctx))

	reopened := NewBookingStore(path, codec.SchemaPriced)
	require.NoError(t, reopened.Load(ctx))
	assert.Equal(t, want, reopened.All())
}

func TestBookingStore_Load_SkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.txt")
	// second line has too few delimiters; last line is not newline-terminated
	content := "Paris,2024-05-01,Flight,199.99\nBadLine\nRome,2024-06-10,Train,89"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewBookingStore(path, codec.SchemaPriced)
	require.NoError(t, store.Load(ctx))
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.Skipped())
	assert.Equal(t, "Paris", store.All()[0].Destination)
	assert.Equal(t, "Rome", store.All()[1].Destination)
}

func TestBookingStore_Add_AllowsDuplicates(t *testing.T) {
	store := tempStore(t)
	b := domain.Booking{Destination: "Oslo", Date: "2024-07-01", TransportType: "Bus", Price: 30}
	store.Add(b)
	store.Add(b)
	assert.Equal(t, 2, store.Len())
}

func TestBookingStore_UpdateAt(t *testing.T) {
	store := tempStore(t)
	store.Add(domain.Booking{Destination: "Oslo"})

	updated := domain.Booking{Destination: "Bergen", Date: "2024-08-01", TransportType: "Train", Price: 55}
	assert.NoError(t, store.UpdateAt(0, updated))
	assert.Equal(t, updated, store.All()[0])
}

func TestBookingStore_UpdateAt_OutOfRangeLeavesStoreUnchanged(t *testing.T) {
	store := tempStore(t)
	store.Add(domain.Booking{Destination: "A"})
	store.Add(domain.Booking{Destination: "B"})
	before := store.All()

	err := store.UpdateAt(5, domain.Booking{Destination: "X"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, before, store.All())

	err = store.UpdateAt(-1, domain.Booking{Destination: "X"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, before, store.All())
}

func TestBookingStore_RemoveAt_ShiftsIndices(t *testing.T) {
	store := tempStore(t)
	store.Add(domain.Booking{Destination: "A"})
	store.Add(domain.Booking{Destination: "B"})
	store.Add(domain.Booking{Destination: "C"})

	require.NoError(t, store.RemoveAt(0))
	assert.Equal(t, []string{"B", "C"}, destinations(store.All()))

	require.NoError(t, store.RemoveAt(0))
	assert.Equal(t, []string{"C"}, destinations(store.All()))

	err := store.RemoveAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBookingStore_All_IsSnapshot(t *testing.T) {
	store := tempStore(t)
	store.Add(domain.Booking{Destination: "A"})

	first := store.All()
	second := store.All()
	assert.Equal(t, first, second)

	store.Add(domain.Booking{Destination: "B"})
	assert.Len(t, first, 1)
}

func TestBookingStore_FirstSessionScenario(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	store := NewBookingStore(path, codec.SchemaPriced)
	require.NoError(t, store.Load(ctx))
	require.Equal(t, 0, store.Len())

	store.Add(domain.Booking{Destination: "Paris", Date: "2024-05-01", TransportType: "Flight", Price: 199.99})
	require.NoError(t, store.Save(ctx))

	reopened := NewBookingStore(path, codec.SchemaPriced)
	require.NoError(t, reopened.Load(ctx))
	all := reopened.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.Booking{Destination: "Paris", Date: "2024-05-01", TransportType: "Flight", Price: 199.99}, all[0])
}

func TestBookingStore_PlainSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	store := NewBookingStore(path, codec.SchemaPlain)
	store.Add(domain.Booking{Destination: "Paris", Date: "2024-05-01", TransportType: "Flight"})
	require.NoError(t, store.Save(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Paris,2024-05-01,Flight\n", string(data))
}

func destinations(bookings []domain.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.Destination
	}
	return out
}
