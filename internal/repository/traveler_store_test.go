package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvrva/travelbook/internal/domain"
)

func TestTravelerStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "travelers.txt")

	store := NewTravelerStore(path)
	require.NoError(t, store.Load(ctx))
	store.Add(domain.Traveler{Name: "Ann", ID: 1, Email: "ann@example.com", LoyaltyPoints: 150})
	store.Add(domain.Traveler{Name: "Bob", ID: 2, Email: "bob@example.com", LoyaltyPoints: 20})
	require.NoError(t, store.Save(ctx))

	reopened := NewTravelerStore(path)
	require.NoError(t, reopened.Load(ctx))
	assert.Equal(t, store.All(), reopened.All())
}

func TestTravelerStore_Load_MissingFile(t *testing.T) {
	store := NewTravelerStore(filepath.Join(t.TempDir(), "travelers.txt"))
	assert.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 0, store.Len())
}

func TestTravelerStore_Load_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travelers.txt")
	content := "Ann,1,ann@example.com,150\nnot a record\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewTravelerStore(path)
	require.NoError(t, store.Load(context.Background()))
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Ann", store.All()[0].Name)
}
